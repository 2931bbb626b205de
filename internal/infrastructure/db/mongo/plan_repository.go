package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindfit/wellness-api/internal/core/domain"
	"github.com/mindfit/wellness-api/internal/core/ports"
)

const collectionPlans = "exercise_plans"

type PlanRepository struct {
	col *mongo.Collection
	seq *sequences
}

func NewPlanRepository(db *mongo.Database) *PlanRepository {
	return &PlanRepository{col: db.Collection(collectionPlans), seq: newSequences(db)}
}

type planDoc struct {
	ID             int64          `bson:"_id"`
	UserID         int64          `bson:"user_id"`
	SessionID      *int64         `bson:"session_id,omitempty"`
	Name           string         `bson:"plan_name"`
	Description    string         `bson:"plan_description,omitempty"`
	Content        map[string]any `bson:"plan_content"`
	DurationWeeks  int            `bson:"duration_weeks"`
	Intensity      string         `bson:"intensity_level"`
	TargetAreas    []string       `bson:"target_areas,omitempty"`
	CaloriesTarget int            `bson:"calories_target,omitempty"`
	Status         string         `bson:"status"`
	StartDate      *time.Time     `bson:"start_date,omitempty"`
	EndDate        *time.Time     `bson:"end_date,omitempty"`
	CreatedAt      time.Time      `bson:"created_at"`
}

func (d planDoc) toDomain() *domain.ExercisePlan {
	return &domain.ExercisePlan{
		ID:             d.ID,
		UserID:         d.UserID,
		SessionID:      d.SessionID,
		Name:           d.Name,
		Description:    d.Description,
		Content:        d.Content,
		DurationWeeks:  d.DurationWeeks,
		Intensity:      domain.IntensityLevel(d.Intensity),
		TargetAreas:    d.TargetAreas,
		CaloriesTarget: d.CaloriesTarget,
		Status:         domain.PlanStatus(d.Status),
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		CreatedAt:      d.CreatedAt,
	}
}

func (r *PlanRepository) Create(ctx context.Context, p *domain.ExercisePlan) (*domain.ExercisePlan, error) {
	id, err := r.seq.next(ctx, "exercise_plans")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := planDoc{
		ID:             id,
		UserID:         p.UserID,
		SessionID:      p.SessionID,
		Name:           p.Name,
		Description:    p.Description,
		Content:        p.Content,
		DurationWeeks:  p.DurationWeeks,
		Intensity:      string(p.Intensity),
		TargetAreas:    p.TargetAreas,
		CaloriesTarget: p.CaloriesTarget,
		Status:         string(p.Status),
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		CreatedAt:      time.Now().UTC(),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert plan: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PlanRepository) FindByOwner(ctx context.Context, ownerID, id int64) (*domain.ExercisePlan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc planDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id, "user_id": ownerID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find plan: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PlanRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.ExercisePlan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer cur.Close(ctx)

	out := []*domain.ExercisePlan{}
	for cur.Next(ctx) {
		var doc planDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode plan: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *PlanRepository) Update(ctx context.Context, ownerID, id int64, patch ports.PlanPatch) (*domain.ExercisePlan, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["plan_name"] = *patch.Name
	}
	if patch.Description != nil {
		set["plan_description"] = *patch.Description
	}
	if patch.Content != nil {
		set["plan_content"] = *patch.Content
	}
	if patch.DurationWeeks != nil {
		set["duration_weeks"] = *patch.DurationWeeks
	}
	if patch.Intensity != nil {
		set["intensity_level"] = string(*patch.Intensity)
	}
	if patch.TargetAreas != nil {
		set["target_areas"] = *patch.TargetAreas
	}
	if patch.CaloriesTarget != nil {
		set["calories_target"] = *patch.CaloriesTarget
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.StartDate != nil {
		set["start_date"] = *patch.StartDate
	}
	if patch.EndDate != nil {
		set["end_date"] = *patch.EndDate
	}
	if len(set) == 0 {
		return r.FindByOwner(ctx, ownerID, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc planDoc
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id, "user_id": ownerID}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update plan: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PlanRepository) Delete(ctx context.Context, ownerID, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "user_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PlanRepository) DeleteByOwner(ctx context.Context, ownerID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"user_id": ownerID}); err != nil {
		return fmt.Errorf("delete plans: %w", err)
	}
	return nil
}

func (r *PlanRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
