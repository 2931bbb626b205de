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

const collectionMessages = "consultation_messages"

type MessageRepository struct {
	col *mongo.Collection
	seq *sequences
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{col: db.Collection(collectionMessages), seq: newSequences(db)}
}

type messageDoc struct {
	ID         int64     `bson:"_id"`
	SessionID  int64     `bson:"session_id"`
	Type       string    `bson:"message_type"`
	Content    string    `bson:"content"`
	MoodRating *int      `bson:"mood_rating,omitempty"`
	CreatedAt  time.Time `bson:"created_at"`
}

func (d messageDoc) toDomain() *domain.ConsultationMessage {
	return &domain.ConsultationMessage{
		ID:         d.ID,
		SessionID:  d.SessionID,
		Type:       domain.MessageType(d.Type),
		Content:    d.Content,
		MoodRating: d.MoodRating,
		CreatedAt:  d.CreatedAt,
	}
}

func (r *MessageRepository) Append(ctx context.Context, m *domain.ConsultationMessage) (*domain.ConsultationMessage, error) {
	id, err := r.seq.next(ctx, "consultation_messages")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := messageDoc{
		ID:         id,
		SessionID:  m.SessionID,
		Type:       string(m.Type),
		Content:    m.Content,
		MoodRating: m.MoodRating,
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MessageRepository) ListBySession(ctx context.Context, sessionID int64) ([]*domain.ConsultationMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer cur.Close(ctx)

	out := []*domain.ConsultationMessage{}
	for cur.Next(ctx) {
		var doc messageDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *MessageRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "session_id", Value: 1}},
	})
	return err
}
