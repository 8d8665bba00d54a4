package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/farbodforooghi-ux/istanbul-gasht-backend/internal/handler"
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/internal/model"
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/internal/repository"
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/internal/service"
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/pkg/assets"
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/pkg/database"
	applogger "github.com/farbodforooghi-ux/istanbul-gasht-backend/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Env (.env is optional outside local dev)
	_ = godotenv.Load()

	log := applogger.New()
	defer log.Sync()

	// 2. Setup Database
	db := database.ConnectDB()
	if err := db.AutoMigrate(&model.Product{}, &model.AdminUser{}, &model.Order{}, &model.ActivityLog{}); err != nil {
		log.Fatal("Auto migration failed", zap.Error(err))
	}
	log.Info("Database connection established")

	// 3. Asset store: MinIO when configured, local disk otherwise
	assetStore, diskDir := setupAssetStore(log)

	// 4. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	activityRepo := repository.NewActivityRepo(db)
	adminRepo := repository.NewAdminUserRepo(db)

	catalogService := service.NewCatalogService(productRepo, activityRepo, assetStore, db, log)
	dashService := service.NewDashboardService(orderRepo, productRepo, activityRepo)
	profileService := service.NewProfileService(adminRepo, activityRepo, assetStore, db, log)

	productHandler := handler.NewProductHandler(catalogService)
	dashHandler := handler.NewDashboardHandler(dashService)
	profileHandler := handler.NewProfileHandler(profileService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Istanbul Gasht Store Admin v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// Dashboard
	api.Get("/dashboard/stats", dashHandler.GetStats)
	api.Get("/dashboard/sales-trend", dashHandler.GetSalesTrend)
	api.Get("/dashboard/activity", dashHandler.GetRecentActivity)

	// Product catalog
	api.Get("/products", productHandler.GetProducts)
	api.Post("/products", productHandler.CreateProduct)
	api.Put("/products/:id", productHandler.UpdateProduct)
	api.Delete("/products/:id", productHandler.DeleteProduct)

	// Admin profile
	api.Get("/profile", profileHandler.GetProfile)
	api.Put("/profile", profileHandler.UpdateProfile)

	// Serve uploaded files when the disk store is active
	if diskDir != "" {
		app.Static("/uploads", diskDir)
	}

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Fatal("Server stopped", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

// setupAssetStore picks the upload backend from the environment. It returns
// the disk directory too, so main can serve it statically; the MinIO store
// has no local directory.
func setupAssetStore(log *zap.Logger) (assets.Store, string) {
	if endpoint := os.Getenv("MINIO_ENDPOINT"); endpoint != "" {
		store, err := assets.NewMinioStore(
			endpoint,
			os.Getenv("MINIO_ACCESS_KEY"),
			os.Getenv("MINIO_SECRET_KEY"),
			os.Getenv("MINIO_BUCKET"),
			os.Getenv("MINIO_USE_SSL") == "true",
		)
		if err != nil {
			log.Fatal("Failed to connect to MinIO", zap.Error(err))
		}
		if err := store.EnsureBucket(context.Background()); err != nil {
			log.Fatal("Failed to ensure MinIO bucket", zap.Error(err))
		}
		log.Info("Using MinIO asset store", zap.String("endpoint", endpoint))
		return store, ""
	}

	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "./uploads"
	}
	store, err := assets.NewDiskStore(dir)
	if err != nil {
		log.Fatal("Failed to create upload directory", zap.Error(err))
	}
	log.Info("Using disk asset store", zap.String("dir", dir))
	return store, dir
}
