package repository

import (
	"context"
	"fmt"

	"esgreporting/database"
	"esgreporting/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AssetRepository interface {
	Create(ctx context.Context, asset *models.Asset) error
	GetByID(ctx context.Context, id int64) (*models.Asset, error)
	GetAll(ctx context.Context) ([]models.Asset, error)
	Update(ctx context.Context, id int64, asset *models.Asset) error
	Delete(ctx context.Context, id int64) error
}

type assetRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

func NewAssetRepository(db *mongo.Database) AssetRepository {
	return &assetRepository{
		db:         db,
		collection: db.Collection("assets"),
	}
}

func (r *assetRepository) Create(ctx context.Context, asset *models.Asset) error {
	id, err := database.NextID(ctx, r.db, "assets")
	if err != nil {
		return err
	}
	asset.ID = id

	_, err = r.collection.InsertOne(ctx, asset)
	return err
}

func (r *assetRepository) GetByID(ctx context.Context, id int64) (*models.Asset, error) {
	var asset models.Asset
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&asset)
	if err != nil {
		return nil, err
	}

	return &asset, nil
}

func (r *assetRepository) GetAll(ctx context.Context) ([]models.Asset, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assets []models.Asset
	if err = cursor.All(ctx, &assets); err != nil {
		return nil, err
	}

	return assets, nil
}

func (r *assetRepository) Update(ctx context.Context, id int64, asset *models.Asset) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": asset})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no asset found with id %d", id)
	}

	return nil
}

func (r *assetRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("no asset found with id %d", id)
	}

	return nil
}

type ComparisonRepository interface {
	Create(ctx context.Context, comparison *models.AssetComparison) error
	GetByID(ctx context.Context, id int64) (*models.AssetComparison, error)
	GetAll(ctx context.Context) ([]models.AssetComparison, error)
	Update(ctx context.Context, id int64, comparison *models.AssetComparison) error
	Delete(ctx context.Context, id int64) error
}

type comparisonRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

func NewComparisonRepository(db *mongo.Database) ComparisonRepository {
	return &comparisonRepository{
		db:         db,
		collection: db.Collection("asset_comparisons"),
	}
}

func (r *comparisonRepository) Create(ctx context.Context, comparison *models.AssetComparison) error {
	id, err := database.NextID(ctx, r.db, "asset_comparisons")
	if err != nil {
		return err
	}
	comparison.ID = id

	// Proposals are embedded in order; they have no IDs of their own.
	if comparison.Proposals == nil {
		comparison.Proposals = []models.ComparisonProposal{}
	}

	_, err = r.collection.InsertOne(ctx, comparison)
	return err
}

func (r *comparisonRepository) GetByID(ctx context.Context, id int64) (*models.AssetComparison, error) {
	var comparison models.AssetComparison
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&comparison)
	if err != nil {
		return nil, err
	}

	return &comparison, nil
}

func (r *comparisonRepository) GetAll(ctx context.Context) ([]models.AssetComparison, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comparisons []models.AssetComparison
	if err = cursor.All(ctx, &comparisons); err != nil {
		return nil, err
	}

	return comparisons, nil
}

func (r *comparisonRepository) Update(ctx context.Context, id int64, comparison *models.AssetComparison) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": comparison})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no comparison found with id %d", id)
	}

	return nil
}

func (r *comparisonRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("no comparison found with id %d", id)
	}

	return nil
}
