package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"esgreporting/cache"
	"esgreporting/database"
	"esgreporting/handlers"
	repository "esgreporting/repositories"
	routes "esgreporting/routes"
	services "esgreporting/services"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Get MongoDB connection settings from environment variables
	mongoURI := os.Getenv("MONGO_URI")
	jwtSecret := os.Getenv("JWT_SECRET")

	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	if jwtSecret == "" {
		log.Fatal("Missing required environment variable JWT_SECRET")
	}

	// Create a new client and connect to the server
	clientOptions := options.Client().ApplyURI(mongoURI)
	client, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal("Failed to disconnect from MongoDB:", err)
		}
	}()

	// Set a timeout for the ping operation
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Ping the primary to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}

	fmt.Println("Successfully connected to MongoDB!")

	// Initialize database
	db := client.Database("esg_reporting")

	// Create indexes
	fmt.Println("Creating database indexes...")
	if err := database.CreateReportingIndexes(db); err != nil {
		log.Printf("Warning: Failed to create reporting indexes: %v", err)
	}

	// Redis is optional; without it the dashboard recomputes on every request
	var reportCache *cache.ReportCache
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Warning: Redis unavailable, dashboard caching disabled: %v", err)
		} else {
			fmt.Println("Successfully connected to Redis!")
			reportCache = cache.New(redisClient, 5*time.Minute)
		}
	}

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	comparisonRepo := repository.NewComparisonRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	standardRepo := repository.NewStandardRepository(db)
	factorRepo := repository.NewFactorRepository(db)
	measurementRepo := repository.NewMeasurementRepository(db)

	// Initialize services
	projectService := services.NewProjectService(projectRepo, activityRepo, factorRepo)
	assetService := services.NewAssetService(assetRepo, comparisonRepo)
	supplierService := services.NewSupplierService(supplierRepo, standardRepo)
	emissionService := services.NewEmissionService(factorRepo, measurementRepo)
	dashboardService := services.NewDashboardService(measurementRepo, factorRepo, reportCache)

	// Initialize handlers
	projectHandler := handlers.NewProjectHandler(projectService)
	assetHandler := handlers.NewAssetHandler(assetService)
	supplierHandler := handlers.NewSupplierHandler(supplierService)
	emissionHandler := handlers.NewEmissionHandler(emissionService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Setup routes using ServeMux with JWT middleware
	mux := routes.SetupRoutes(projectHandler, assetHandler, supplierHandler, emissionHandler, dashboardHandler, jwtSecret)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	fmt.Printf("Server starting on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, mux))
}
