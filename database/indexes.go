package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func CreateReportingIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		"projects": {
			// LIST FILTERS: status + year
			{
				Keys: bson.D{
					{Key: "status", Value: 1},
					{Key: "year", Value: 1},
				},
				Options: options.Index().SetName("idx_status_year"),
			},
		},
		"activities": {
			// PROJECT VIEWS: activities grouped per project
			{
				Keys: bson.D{
					{Key: "project_id", Value: 1},
					{Key: "status", Value: 1},
				},
				Options: options.Index().SetName("idx_project_id_status"),
			},
			// OVERDUE SCANS: due_date lookups
			{
				Keys:    bson.D{{Key: "due_date", Value: 1}},
				Options: options.Index().SetName("idx_due_date"),
			},
		},
		"assets": {
			{
				Keys: bson.D{
					{Key: "asset_type", Value: 1},
					{Key: "status", Value: 1},
				},
				Options: options.Index().SetName("idx_asset_type_status"),
			},
		},
		"suppliers": {
			{
				Keys: bson.D{
					{Key: "status", Value: 1},
					{Key: "esg_rating", Value: 1},
				},
				Options: options.Index().SetName("idx_status_esg_rating"),
			},
		},
		"esg_standards": {
			// MATRIX BUILD: supplier + year + status intersection
			{
				Keys: bson.D{
					{Key: "supplier_id", Value: 1},
					{Key: "submission_year", Value: 1},
					{Key: "status", Value: 1},
				},
				Options: options.Index().SetName("idx_supplier_year_status"),
			},
		},
		"emission_factors": {
			{
				Keys: bson.D{
					{Key: "category", Value: 1},
					{Key: "scope", Value: 1},
				},
				Options: options.Index().SetName("idx_category_scope"),
			},
		},
		"measurements": {
			// DASHBOARD ROLLUPS: date-window scans joined to factors
			{
				Keys: bson.D{
					{Key: "date", Value: 1},
					{Key: "emission_factor_id", Value: 1},
				},
				Options: options.Index().SetName("idx_date_factor"),
			},
			{
				Keys:    bson.D{{Key: "category", Value: 1}},
				Options: options.Index().SetName("idx_category"),
			},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create %s indexes: %v", collection, err)
		}
	}

	fmt.Println("Reporting indexes created successfully")
	return nil
}
