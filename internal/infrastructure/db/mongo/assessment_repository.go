package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindfit/wellness-api/internal/core/domain"
)

const collectionAssessments = "assessments"

type AssessmentRepository struct {
	col *mongo.Collection
	seq *sequences
}

func NewAssessmentRepository(db *mongo.Database) *AssessmentRepository {
	return &AssessmentRepository{col: db.Collection(collectionAssessments), seq: newSequences(db)}
}

type assessmentDoc struct {
	ID             int64          `bson:"_id"`
	UserID         int64          `bson:"user_id"`
	Kind           string         `bson:"kind"`
	AssessmentDate time.Time      `bson:"assessment_date"`
	OverallScore   int            `bson:"overall_score"`
	Ratings        map[string]int `bson:"ratings"`
	Recommendation string         `bson:"recommendation"`
	CreatedAt      time.Time      `bson:"created_at"`
}

func (d assessmentDoc) toDomain() *domain.Assessment {
	return &domain.Assessment{
		ID:             d.ID,
		UserID:         d.UserID,
		Kind:           domain.AssessmentKind(d.Kind),
		AssessmentDate: d.AssessmentDate,
		OverallScore:   d.OverallScore,
		Ratings:        d.Ratings,
		Recommendation: d.Recommendation,
		CreatedAt:      d.CreatedAt,
	}
}

func (r *AssessmentRepository) Create(ctx context.Context, a *domain.Assessment) (*domain.Assessment, error) {
	id, err := r.seq.next(ctx, "assessments")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := assessmentDoc{
		ID:             id,
		UserID:         a.UserID,
		Kind:           string(a.Kind),
		AssessmentDate: a.AssessmentDate,
		OverallScore:   a.OverallScore,
		Ratings:        a.Ratings,
		Recommendation: a.Recommendation,
		CreatedAt:      time.Now().UTC(),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert assessment: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AssessmentRepository) ListByOwner(ctx context.Context, ownerID int64, kind domain.AssessmentKind) ([]*domain.Assessment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "assessment_date", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": ownerID, "kind": string(kind)}, opts)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer cur.Close(ctx)

	out := []*domain.Assessment{}
	for cur.Next(ctx) {
		var doc assessmentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode assessment: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *AssessmentRepository) DeleteByOwner(ctx context.Context, ownerID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"user_id": ownerID}); err != nil {
		return fmt.Errorf("delete assessments: %w", err)
	}
	return nil
}

func (r *AssessmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "kind", Value: 1}, {Key: "assessment_date", Value: -1}},
	})
	return err
}
