package repository

import (
	"context"
	"fmt"

	"esgreporting/database"
	"esgreporting/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SupplierRepository interface {
	Create(ctx context.Context, supplier *models.Supplier) error
	GetByID(ctx context.Context, id int64) (*models.Supplier, error)
	GetAll(ctx context.Context) ([]models.Supplier, error)
	Update(ctx context.Context, id int64, supplier *models.Supplier) error
	Delete(ctx context.Context, id int64) error
}

type supplierRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

func NewSupplierRepository(db *mongo.Database) SupplierRepository {
	return &supplierRepository{
		db:         db,
		collection: db.Collection("suppliers"),
	}
}

func (r *supplierRepository) Create(ctx context.Context, supplier *models.Supplier) error {
	id, err := database.NextID(ctx, r.db, "suppliers")
	if err != nil {
		return err
	}
	supplier.ID = id

	_, err = r.collection.InsertOne(ctx, supplier)
	return err
}

func (r *supplierRepository) GetByID(ctx context.Context, id int64) (*models.Supplier, error) {
	var supplier models.Supplier
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&supplier)
	if err != nil {
		return nil, err
	}

	return &supplier, nil
}

func (r *supplierRepository) GetAll(ctx context.Context) ([]models.Supplier, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var suppliers []models.Supplier
	if err = cursor.All(ctx, &suppliers); err != nil {
		return nil, err
	}

	return suppliers, nil
}

func (r *supplierRepository) Update(ctx context.Context, id int64, supplier *models.Supplier) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": supplier})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no supplier found with id %d", id)
	}

	return nil
}

func (r *supplierRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("no supplier found with id %d", id)
	}

	return nil
}

type StandardRepository interface {
	Create(ctx context.Context, record *models.SupplierESGStandard) error
	GetByID(ctx context.Context, id int64) (*models.SupplierESGStandard, error)
	GetAll(ctx context.Context) ([]models.SupplierESGStandard, error)
	GetBySupplier(ctx context.Context, supplierID int64) ([]models.SupplierESGStandard, error)
	Update(ctx context.Context, id int64, record *models.SupplierESGStandard) error
	Delete(ctx context.Context, id int64) error
	DeleteBySupplier(ctx context.Context, supplierID int64) error
}

type standardRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

func NewStandardRepository(db *mongo.Database) StandardRepository {
	return &standardRepository{
		db:         db,
		collection: db.Collection("esg_standards"),
	}
}

func (r *standardRepository) Create(ctx context.Context, record *models.SupplierESGStandard) error {
	id, err := database.NextID(ctx, r.db, "esg_standards")
	if err != nil {
		return err
	}
	record.ID = id

	_, err = r.collection.InsertOne(ctx, record)
	return err
}

func (r *standardRepository) GetByID(ctx context.Context, id int64) (*models.SupplierESGStandard, error) {
	var record models.SupplierESGStandard
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *standardRepository) GetAll(ctx context.Context) ([]models.SupplierESGStandard, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.SupplierESGStandard
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *standardRepository) GetBySupplier(ctx context.Context, supplierID int64) ([]models.SupplierESGStandard, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"supplier_id": supplierID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.SupplierESGStandard
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *standardRepository) Update(ctx context.Context, id int64, record *models.SupplierESGStandard) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": record})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no standard record found with id %d", id)
	}

	return nil
}

func (r *standardRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("no standard record found with id %d", id)
	}

	return nil
}

func (r *standardRepository) DeleteBySupplier(ctx context.Context, supplierID int64) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"supplier_id": supplierID})
	return err
}
