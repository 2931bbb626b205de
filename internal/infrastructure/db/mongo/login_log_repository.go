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

const collectionLoginLogs = "user_login_logs"

type LoginLogRepository struct {
	col *mongo.Collection
	seq *sequences
}

func NewLoginLogRepository(db *mongo.Database) *LoginLogRepository {
	return &LoginLogRepository{col: db.Collection(collectionLoginLogs), seq: newSequences(db)}
}

type loginLogDoc struct {
	ID        int64     `bson:"_id"`
	UserID    *int64    `bson:"user_id,omitempty"`
	LoginType string    `bson:"login_type"`
	UserAgent string    `bson:"user_agent,omitempty"`
	IPAddress string    `bson:"ip_address,omitempty"`
	LoginTime time.Time `bson:"login_time"`
}

func (r *LoginLogRepository) Insert(ctx context.Context, entry *domain.LoginLog) error {
	id, err := r.seq.next(ctx, "user_login_logs")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	at := entry.LoginTime
	if at.IsZero() {
		at = time.Now().UTC()
	}
	doc := loginLogDoc{
		ID:        id,
		UserID:    entry.UserID,
		LoginType: entry.LoginType,
		UserAgent: entry.UserAgent,
		IPAddress: entry.IPAddress,
		LoginTime: at,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert login log: %w", err)
	}
	return nil
}

func (r *LoginLogRepository) ListRecent(ctx context.Context, limit int) ([]*domain.LoginLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "login_time", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list login logs: %w", err)
	}
	defer cur.Close(ctx)

	out := []*domain.LoginLog{}
	for cur.Next(ctx) {
		var doc loginLogDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode login log: %w", err)
		}
		out = append(out, &domain.LoginLog{
			ID:        doc.ID,
			UserID:    doc.UserID,
			LoginType: doc.LoginType,
			UserAgent: doc.UserAgent,
			IPAddress: doc.IPAddress,
			LoginTime: doc.LoginTime,
		})
	}
	return out, cur.Err()
}

func (r *LoginLogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "login_time", Value: -1}},
	})
	return err
}
