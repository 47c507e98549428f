package routes

import (
	"net/http"

	"esgreporting/handlers"
	"esgreporting/middlewares"
)

func SetupRoutes(
	projectHandler *handlers.ProjectHandler,
	assetHandler *handlers.AssetHandler,
	supplierHandler *handlers.SupplierHandler,
	emissionHandler *handlers.EmissionHandler,
	dashboardHandler *handlers.DashboardHandler,
	jwtSecret string,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Apply JWT middleware to all routes
	jwtMiddleware := middlewares.JWTMiddleware(jwtSecret)

	// Project routes with JWT protection
	mux.Handle("POST /api/projects", jwtMiddleware(http.HandlerFunc(projectHandler.CreateProject)))
	mux.Handle("GET /api/projects", jwtMiddleware(http.HandlerFunc(projectHandler.GetAllProjects)))
	mux.Handle("GET /api/projects/{id}", jwtMiddleware(http.HandlerFunc(projectHandler.GetProjectByID)))
	mux.Handle("PUT /api/projects/{id}", jwtMiddleware(http.HandlerFunc(projectHandler.UpdateProject)))
	mux.Handle("DELETE /api/projects/{id}", jwtMiddleware(http.HandlerFunc(projectHandler.DeleteProject)))
	mux.Handle("GET /api/projects/{id}/progress", jwtMiddleware(http.HandlerFunc(projectHandler.GetProjectProgress)))

	// Activity routes
	mux.Handle("POST /api/activities", jwtMiddleware(http.HandlerFunc(projectHandler.CreateActivity)))
	mux.Handle("GET /api/activities", jwtMiddleware(http.HandlerFunc(projectHandler.GetAllActivities)))
	mux.Handle("GET /api/activities/{id}", jwtMiddleware(http.HandlerFunc(projectHandler.GetActivityByID)))
	mux.Handle("PUT /api/activities/{id}", jwtMiddleware(http.HandlerFunc(projectHandler.UpdateActivity)))
	mux.Handle("DELETE /api/activities/{id}", jwtMiddleware(http.HandlerFunc(projectHandler.DeleteActivity)))
	mux.Handle("GET /api/activities/{id}/factors", jwtMiddleware(http.HandlerFunc(projectHandler.GetActivityFactors)))

	// Asset routes
	mux.Handle("POST /api/assets", jwtMiddleware(http.HandlerFunc(assetHandler.CreateAsset)))
	mux.Handle("GET /api/assets", jwtMiddleware(http.HandlerFunc(assetHandler.GetAllAssets)))
	mux.Handle("GET /api/assets/summary", jwtMiddleware(http.HandlerFunc(assetHandler.GetAssetSummary)))
	mux.Handle("GET /api/assets/{id}", jwtMiddleware(http.HandlerFunc(assetHandler.GetAssetByID)))
	mux.Handle("PUT /api/assets/{id}", jwtMiddleware(http.HandlerFunc(assetHandler.UpdateAsset)))
	mux.Handle("DELETE /api/assets/{id}", jwtMiddleware(http.HandlerFunc(assetHandler.DeleteAsset)))

	// Asset comparison routes
	mux.Handle("POST /api/asset-comparisons", jwtMiddleware(http.HandlerFunc(assetHandler.CreateComparison)))
	mux.Handle("GET /api/asset-comparisons", jwtMiddleware(http.HandlerFunc(assetHandler.GetAllComparisons)))
	mux.Handle("GET /api/asset-comparisons/{id}", jwtMiddleware(http.HandlerFunc(assetHandler.GetComparisonByID)))
	mux.Handle("PUT /api/asset-comparisons/{id}", jwtMiddleware(http.HandlerFunc(assetHandler.UpdateComparison)))
	mux.Handle("DELETE /api/asset-comparisons/{id}", jwtMiddleware(http.HandlerFunc(assetHandler.DeleteComparison)))
	mux.Handle("GET /api/asset-comparisons/{id}/savings", jwtMiddleware(http.HandlerFunc(assetHandler.GetComparisonSavings)))

	// Supplier routes
	mux.Handle("POST /api/suppliers", jwtMiddleware(http.HandlerFunc(supplierHandler.CreateSupplier)))
	mux.Handle("GET /api/suppliers", jwtMiddleware(http.HandlerFunc(supplierHandler.GetAllSuppliers)))
	mux.Handle("GET /api/suppliers/summary", jwtMiddleware(http.HandlerFunc(supplierHandler.GetSupplierSummary)))
	mux.Handle("GET /api/suppliers/{id}", jwtMiddleware(http.HandlerFunc(supplierHandler.GetSupplierByID)))
	mux.Handle("PUT /api/suppliers/{id}", jwtMiddleware(http.HandlerFunc(supplierHandler.UpdateSupplier)))
	mux.Handle("DELETE /api/suppliers/{id}", jwtMiddleware(http.HandlerFunc(supplierHandler.DeleteSupplier)))

	// ESG standard submission routes
	mux.Handle("POST /api/esg-standards", jwtMiddleware(http.HandlerFunc(supplierHandler.CreateStandard)))
	mux.Handle("GET /api/esg-standards", jwtMiddleware(http.HandlerFunc(supplierHandler.GetAllStandards)))
	mux.Handle("GET /api/esg-standards/matrix", jwtMiddleware(http.HandlerFunc(supplierHandler.GetAssessmentMatrix)))
	mux.Handle("GET /api/esg-standards/catalog", jwtMiddleware(http.HandlerFunc(supplierHandler.GetStandardCatalog)))
	mux.Handle("GET /api/esg-standards/{id}", jwtMiddleware(http.HandlerFunc(supplierHandler.GetStandardByID)))
	mux.Handle("PUT /api/esg-standards/{id}", jwtMiddleware(http.HandlerFunc(supplierHandler.UpdateStandard)))
	mux.Handle("DELETE /api/esg-standards/{id}", jwtMiddleware(http.HandlerFunc(supplierHandler.DeleteStandard)))

	// Emission factor routes
	mux.Handle("POST /api/emission-factors", jwtMiddleware(http.HandlerFunc(emissionHandler.CreateFactor)))
	mux.Handle("GET /api/emission-factors", jwtMiddleware(http.HandlerFunc(emissionHandler.GetAllFactors)))
	mux.Handle("GET /api/emission-factors/categories", jwtMiddleware(http.HandlerFunc(emissionHandler.GetCategories)))
	mux.Handle("GET /api/emission-factors/{id}", jwtMiddleware(http.HandlerFunc(emissionHandler.GetFactorByID)))
	mux.Handle("PUT /api/emission-factors/{id}", jwtMiddleware(http.HandlerFunc(emissionHandler.UpdateFactor)))
	mux.Handle("DELETE /api/emission-factors/{id}", jwtMiddleware(http.HandlerFunc(emissionHandler.DeleteFactor)))

	// Measurement routes
	mux.Handle("POST /api/measurements", jwtMiddleware(http.HandlerFunc(emissionHandler.CreateMeasurement)))
	mux.Handle("GET /api/measurements", jwtMiddleware(http.HandlerFunc(emissionHandler.GetAllMeasurements)))
	mux.Handle("GET /api/measurements/{id}", jwtMiddleware(http.HandlerFunc(emissionHandler.GetMeasurementByID)))
	mux.Handle("PUT /api/measurements/{id}", jwtMiddleware(http.HandlerFunc(emissionHandler.UpdateMeasurement)))
	mux.Handle("DELETE /api/measurements/{id}", jwtMiddleware(http.HandlerFunc(emissionHandler.DeleteMeasurement)))

	// Dashboard routes
	mux.Handle("GET /api/dashboard/overview", jwtMiddleware(http.HandlerFunc(dashboardHandler.GetOverview)))
	mux.Handle("GET /api/dashboard/emissions-trend", jwtMiddleware(http.HandlerFunc(dashboardHandler.GetEmissionsTrend)))

	return mux
}
