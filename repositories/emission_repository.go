package repository

import (
	"context"
	"fmt"

	"esgreporting/database"
	"esgreporting/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FactorRepository interface {
	Create(ctx context.Context, factor *models.EmissionFactor) error
	GetByID(ctx context.Context, id int64) (*models.EmissionFactor, error)
	GetAll(ctx context.Context) ([]models.EmissionFactor, error)
	Update(ctx context.Context, id int64, factor *models.EmissionFactor) error
	Delete(ctx context.Context, id int64) error
}

type factorRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

func NewFactorRepository(db *mongo.Database) FactorRepository {
	return &factorRepository{
		db:         db,
		collection: db.Collection("emission_factors"),
	}
}

func (r *factorRepository) Create(ctx context.Context, factor *models.EmissionFactor) error {
	id, err := database.NextID(ctx, r.db, "emission_factors")
	if err != nil {
		return err
	}
	factor.ID = id

	_, err = r.collection.InsertOne(ctx, factor)
	return err
}

func (r *factorRepository) GetByID(ctx context.Context, id int64) (*models.EmissionFactor, error) {
	var factor models.EmissionFactor
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&factor)
	if err != nil {
		return nil, err
	}

	return &factor, nil
}

func (r *factorRepository) GetAll(ctx context.Context) ([]models.EmissionFactor, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var factors []models.EmissionFactor
	if err = cursor.All(ctx, &factors); err != nil {
		return nil, err
	}

	return factors, nil
}

func (r *factorRepository) Update(ctx context.Context, id int64, factor *models.EmissionFactor) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": factor})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no emission factor found with id %d", id)
	}

	return nil
}

func (r *factorRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("no emission factor found with id %d", id)
	}

	return nil
}

type MeasurementRepository interface {
	Create(ctx context.Context, measurement *models.Measurement) error
	GetByID(ctx context.Context, id int64) (*models.Measurement, error)
	GetAll(ctx context.Context) ([]models.Measurement, error)
	GetRecent(ctx context.Context, limit int64) ([]models.Measurement, error)
	Update(ctx context.Context, id int64, measurement *models.Measurement) error
	Delete(ctx context.Context, id int64) error
}

type measurementRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

func NewMeasurementRepository(db *mongo.Database) MeasurementRepository {
	return &measurementRepository{
		db:         db,
		collection: db.Collection("measurements"),
	}
}

func (r *measurementRepository) Create(ctx context.Context, measurement *models.Measurement) error {
	id, err := database.NextID(ctx, r.db, "measurements")
	if err != nil {
		return err
	}
	measurement.ID = id

	_, err = r.collection.InsertOne(ctx, measurement)
	return err
}

func (r *measurementRepository) GetByID(ctx context.Context, id int64) (*models.Measurement, error) {
	var measurement models.Measurement
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&measurement)
	if err != nil {
		return nil, err
	}

	return &measurement, nil
}

func (r *measurementRepository) GetAll(ctx context.Context) ([]models.Measurement, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var measurements []models.Measurement
	if err = cursor.All(ctx, &measurements); err != nil {
		return nil, err
	}

	return measurements, nil
}

func (r *measurementRepository) GetRecent(ctx context.Context, limit int64) ([]models.Measurement, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "metadata.created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var measurements []models.Measurement
	if err = cursor.All(ctx, &measurements); err != nil {
		return nil, err
	}

	return measurements, nil
}

func (r *measurementRepository) Update(ctx context.Context, id int64, measurement *models.Measurement) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": measurement})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no measurement found with id %d", id)
	}

	return nil
}

func (r *measurementRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("no measurement found with id %d", id)
	}

	return nil
}
