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
)

const collectionSessions = "consultation_sessions"

type SessionRepository struct {
	col *mongo.Collection
	seq *sequences
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{col: db.Collection(collectionSessions), seq: newSequences(db)}
}

type sessionDoc struct {
	ID         int64     `bson:"_id"`
	UserID     *int64    `bson:"user_id,omitempty"`
	Title      string    `bson:"title,omitempty"`
	UserQuery  string    `bson:"user_query"`
	AIResponse string    `bson:"ai_response"`
	Type       string    `bson:"consultation_type"`
	MoodRating *int      `bson:"mood_rating,omitempty"`
	CreatedAt  time.Time `bson:"created_at"`
}

func (d sessionDoc) toDomain() *domain.ConsultationSession {
	return &domain.ConsultationSession{
		ID:         d.ID,
		UserID:     d.UserID,
		Title:      d.Title,
		UserQuery:  d.UserQuery,
		AIResponse: d.AIResponse,
		Type:       domain.ConsultationType(d.Type),
		MoodRating: d.MoodRating,
		CreatedAt:  d.CreatedAt,
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.ConsultationSession) (*domain.ConsultationSession, error) {
	id, err := r.seq.next(ctx, "consultation_sessions")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := sessionDoc{
		ID:         id,
		UserID:     s.UserID,
		Title:      s.Title,
		UserQuery:  s.UserQuery,
		AIResponse: s.AIResponse,
		Type:       string(s.Type),
		MoodRating: s.MoodRating,
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *SessionRepository) FindByUser(ctx context.Context, userID int64) (*domain.ConsultationSession, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	var doc sessionDoc
	if err := r.col.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id int64) (*domain.ConsultationSession, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc sessionDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *SessionRepository) UpdateExchange(ctx context.Context, id int64, query, response string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"user_query": query, "ai_response": response},
	})
	if err != nil {
		return fmt.Errorf("update session exchange: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.ConsultationSession, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer cur.Close(ctx)

	out := []*domain.ConsultationSession{}
	for cur.Next(ctx) {
		var doc sessionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode session: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *SessionRepository) DetachUser(ctx context.Context, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateMany(ctx, bson.M{"user_id": userID}, bson.M{
		"$unset": bson.M{"user_id": ""},
	})
	if err != nil {
		return fmt.Errorf("detach sessions: %w", err)
	}
	return nil
}

func (r *SessionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
