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

const collectionMeasurements = "body_measurements"

type MeasurementRepository struct {
	col *mongo.Collection
	seq *sequences
}

func NewMeasurementRepository(db *mongo.Database) *MeasurementRepository {
	return &MeasurementRepository{col: db.Collection(collectionMeasurements), seq: newSequences(db)}
}

type measurementDoc struct {
	ID              int64     `bson:"_id"`
	UserID          int64     `bson:"user_id"`
	Weight          *float64  `bson:"weight,omitempty"`
	Height          *float64  `bson:"height,omitempty"`
	WaistCm         *float64  `bson:"waist_circumference,omitempty"`
	ChestCm         *float64  `bson:"chest_circumference,omitempty"`
	HipCm           *float64  `bson:"hip_circumference,omitempty"`
	BMI             *float64  `bson:"bmi,omitempty"`
	BodyFatPercent  *float64  `bson:"body_fat_percentage,omitempty"`
	MuscleMass      *float64  `bson:"muscle_mass,omitempty"`
	MeasurementDate time.Time `bson:"measurement_date"`
	Notes           string    `bson:"notes,omitempty"`
	CreatedAt       time.Time `bson:"created_at"`
}

func (d measurementDoc) toDomain() *domain.BodyMeasurement {
	return &domain.BodyMeasurement{
		ID:              d.ID,
		UserID:          d.UserID,
		Weight:          d.Weight,
		Height:          d.Height,
		WaistCm:         d.WaistCm,
		ChestCm:         d.ChestCm,
		HipCm:           d.HipCm,
		BMI:             d.BMI,
		BodyFatPercent:  d.BodyFatPercent,
		MuscleMass:      d.MuscleMass,
		MeasurementDate: d.MeasurementDate,
		Notes:           d.Notes,
		CreatedAt:       d.CreatedAt,
	}
}

func (r *MeasurementRepository) Create(ctx context.Context, m *domain.BodyMeasurement) (*domain.BodyMeasurement, error) {
	id, err := r.seq.next(ctx, "body_measurements")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := measurementDoc{
		ID:              id,
		UserID:          m.UserID,
		Weight:          m.Weight,
		Height:          m.Height,
		WaistCm:         m.WaistCm,
		ChestCm:         m.ChestCm,
		HipCm:           m.HipCm,
		BMI:             m.BMI,
		BodyFatPercent:  m.BodyFatPercent,
		MuscleMass:      m.MuscleMass,
		MeasurementDate: m.MeasurementDate,
		Notes:           m.Notes,
		CreatedAt:       time.Now().UTC(),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert measurement: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MeasurementRepository) FindByOwner(ctx context.Context, ownerID, id int64) (*domain.BodyMeasurement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc measurementDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id, "user_id": ownerID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find measurement: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MeasurementRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.BodyMeasurement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "measurement_date", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	defer cur.Close(ctx)

	out := []*domain.BodyMeasurement{}
	for cur.Next(ctx) {
		var doc measurementDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode measurement: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *MeasurementRepository) Update(ctx context.Context, ownerID, id int64, patch ports.MeasurementPatch) (*domain.BodyMeasurement, error) {
	set := bson.M{}
	if patch.Weight != nil {
		set["weight"] = *patch.Weight
	}
	if patch.Height != nil {
		set["height"] = *patch.Height
	}
	if patch.WaistCm != nil {
		set["waist_circumference"] = *patch.WaistCm
	}
	if patch.ChestCm != nil {
		set["chest_circumference"] = *patch.ChestCm
	}
	if patch.HipCm != nil {
		set["hip_circumference"] = *patch.HipCm
	}
	if patch.BMI != nil {
		set["bmi"] = *patch.BMI
	}
	if patch.BodyFatPercent != nil {
		set["body_fat_percentage"] = *patch.BodyFatPercent
	}
	if patch.MuscleMass != nil {
		set["muscle_mass"] = *patch.MuscleMass
	}
	if patch.MeasurementDate != nil {
		set["measurement_date"] = *patch.MeasurementDate
	}
	if patch.Notes != nil {
		set["notes"] = *patch.Notes
	}
	if len(set) == 0 {
		return r.FindByOwner(ctx, ownerID, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc measurementDoc
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id, "user_id": ownerID}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update measurement: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MeasurementRepository) Delete(ctx context.Context, ownerID, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "user_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete measurement: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MeasurementRepository) DeleteByOwner(ctx context.Context, ownerID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"user_id": ownerID}); err != nil {
		return fmt.Errorf("delete measurements: %w", err)
	}
	return nil
}

func (r *MeasurementRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "measurement_date", Value: 1}},
	})
	return err
}
