package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindfit/wellness-api/internal/core/domain"
	"github.com/mindfit/wellness-api/internal/core/ports"
)

const collectionUsers = "users"

type UserRepository struct {
	col *mongo.Collection
	seq *sequences
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers), seq: newSequences(db)}
}

type userDoc struct {
	ID            int64      `bson:"_id"`
	Username      string     `bson:"username"`
	PasswordHash  string     `bson:"password_hash"`
	Email         string     `bson:"email,omitempty"`
	Phone         string     `bson:"phone,omitempty"`
	Nickname      string     `bson:"nickname,omitempty"`
	AvatarURL     string     `bson:"avatar_url,omitempty"`
	Hobbies       []string   `bson:"hobbies,omitempty"`
	Gender        string     `bson:"gender,omitempty"`
	Age           *int       `bson:"age,omitempty"`
	BirthDate     *time.Time `bson:"birth_date,omitempty"`
	AgreedToTerms bool       `bson:"agreed_to_terms"`
	IsActive      bool       `bson:"is_active"`
	LastLogin     *time.Time `bson:"last_login,omitempty"`
	CreatedAt     time.Time  `bson:"created_at"`
	UpdatedAt     time.Time  `bson:"updated_at"`
}

func toUserDoc(u *domain.User) userDoc {
	return userDoc{
		ID:            u.ID,
		Username:      u.Username,
		PasswordHash:  u.PasswordHash,
		Email:         u.Email,
		Phone:         u.Phone,
		Nickname:      u.Nickname,
		AvatarURL:     u.AvatarURL,
		Hobbies:       u.Hobbies,
		Gender:        u.Gender,
		Age:           u.Age,
		BirthDate:     u.BirthDate,
		AgreedToTerms: u.AgreedToTerms,
		IsActive:      u.IsActive,
		LastLogin:     u.LastLogin,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:            d.ID,
		Username:      d.Username,
		PasswordHash:  d.PasswordHash,
		Email:         d.Email,
		Phone:         d.Phone,
		Nickname:      d.Nickname,
		AvatarURL:     d.AvatarURL,
		Hobbies:       d.Hobbies,
		Gender:        d.Gender,
		Age:           d.Age,
		BirthDate:     d.BirthDate,
		AgreedToTerms: d.AgreedToTerms,
		IsActive:      d.IsActive,
		LastLogin:     d.LastLogin,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	id, err := r.seq.next(ctx, "users")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := toUserDoc(user)
	doc.ID = id
	doc.IsActive = true
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			if strings.Contains(err.Error(), "email") {
				return nil, domain.ErrEmailTaken
			}
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"last_login": at.UTC(), "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("update last_login: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// profileUpdate builds the update document for UpdateProfile. Clearing the
// email must remove the field entirely: the unique index on email is sparse,
// so a stored "" would collide with the next user who clears theirs.
func profileUpdate(patch ports.UserProfilePatch) bson.M {
	set := bson.M{"updated_at": time.Now().UTC()}
	unset := bson.M{}
	if patch.Nickname != nil {
		set["nickname"] = *patch.Nickname
	}
	if patch.Email != nil {
		if *patch.Email == "" {
			unset["email"] = ""
		} else {
			set["email"] = *patch.Email
		}
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}
	if patch.AvatarURL != nil {
		set["avatar_url"] = *patch.AvatarURL
	}
	if patch.Hobbies != nil {
		set["hobbies"] = *patch.Hobbies
	}
	if patch.Gender != nil {
		set["gender"] = *patch.Gender
	}
	if patch.Age != nil {
		set["age"] = *patch.Age
	}
	if patch.BirthDate != nil {
		set["birth_date"] = *patch.BirthDate
	}
	if patch.AgreedToTerms != nil {
		set["agreed_to_terms"] = *patch.AgreedToTerms
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, patch ports.UserProfilePatch) (*domain.User, error) {
	update := profileUpdate(patch)

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc userDoc
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	out := []*domain.User{}
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// EnsureIndexes creates the uniqueness indexes backing username and email
// conflict detection. The email index is sparse so users without an email
// don't collide.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_username"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true).SetName("uniq_email"),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
