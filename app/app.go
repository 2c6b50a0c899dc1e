package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"gcwab-store/app/controller"
	"gcwab-store/app/router"
	"gcwab-store/db"
	"gcwab-store/repository"
	"gcwab-store/service"
)

// Initialize wires the application: database, schema, repositories, services,
// controllers and routes. The returned handle is closed by the caller.
func Initialize() (*sql.DB, error) {
	database, err := db.Connect()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.EnsureSchema(context.Background(), database); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	if err := service.EnsureMediaCacheDir(); err != nil {
		return nil, err
	}

	// Repositories
	cartSnapshots := repository.NewCartSnapshotRepository(database)
	products := repository.NewProductRepository(database)
	vehicles := repository.NewVehicleRepository(database)
	chats := repository.NewChatRepository(database)
	engagement := repository.NewEngagementRepository(database)

	// Admin gate shared across the admin surface
	adminGate := controller.NewAdminGateFromEnv()

	// Media pipeline is optional: without Drive credentials the store still
	// runs, serving only externally hosted images
	var mediaService service.MediaServiceInterface
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	folderID := os.Getenv("DRIVE_MEDIA_FOLDER_ID")
	if credentialsPath == "" || folderID == "" {
		log.Printf("⚠️  Warning: GOOGLE_APPLICATION_CREDENTIALS or DRIVE_MEDIA_FOLDER_ID not set, media uploads disabled")
	} else {
		driveService, err := service.NewDriveService(credentialsPath, folderID)
		if err != nil {
			return nil, err
		}
		mediaService = service.NewMediaService(driveService)
	}

	newsAPIKey := os.Getenv("NEWS_API_KEY")
	if newsAPIKey == "" {
		log.Printf("⚠️  Warning: NEWS_API_KEY not set, news feed will return errors")
	}
	newsService := service.NewNewsService(newsAPIKey)

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		baseURL = "http://localhost:" + port
	}
	brochureService := service.NewBrochureService(vehicles, baseURL)

	controllers := &router.Controllers{
		Cart:       controller.NewCartController(cartSnapshots),
		Catalog:    controller.NewCatalogController(products, adminGate),
		Vehicle:    controller.NewVehicleController(vehicles, brochureService, adminGate),
		Chat:       controller.NewChatController(chats, adminGate),
		News:       controller.NewNewsController(newsService),
		Engagement: controller.NewEngagementController(engagement, adminGate),
		Media:      controller.NewMediaController(mediaService, adminGate),
	}

	router.SetupRoutes(controllers)

	return database, nil
}
