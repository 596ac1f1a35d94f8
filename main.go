package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/aryabhatt-hostel/arya-backend/database"
	"github.com/aryabhatt-hostel/arya-backend/internal/config"
	"github.com/aryabhatt-hostel/arya-backend/internal/models"
	"github.com/aryabhatt-hostel/arya-backend/internal/routes"
	"github.com/aryabhatt-hostel/arya-backend/internal/services"
	"github.com/aryabhatt-hostel/arya-backend/internal/storage"
)

func main() {
	// Load .env file for local development
	if os.Getenv("INSTANCE_CONNECTION_NAME") == "" {
		err := godotenv.Load(".env")
		if err != nil {
			err = godotenv.Load("environments/.env.development")
			if err != nil {
				log.Println("⚠️  No .env file found - checking environment variables")
			}
		}
	}

	// Upstream credentials for the QA pipeline
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	// Initialize storage
	var store storage.Store

	// Check if we should use memory store (for testing)
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		log.Println("⚠️  Using in-memory storage (not for production!)")
		store = storage.NewMemoryStore()
	} else {
		// Connect to database
		log.Println("📦 Connecting to PostgreSQL database...")
		database.Connect()

		// Run migrations
		log.Println("🔄 Running database migrations...")
		err := database.DB.AutoMigrate(
			&models.Complaint{},
			&models.MessMenu{},
		)
		if err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		log.Println("✅ Database migrations completed!")

		store = storage.NewDatabaseStore(database.DB)
		log.Println("✅ Using PostgreSQL database storage")
	}

	// Initialize Twilio service for the WhatsApp channel
	twilioService, err := services.NewTwilioService()
	if err != nil {
		log.Printf("⚠️  Twilio not configured - WhatsApp channel disabled: %v", err)
		twilioService = nil
	} else {
		log.Println("✅ Twilio service initialized")
	}

	// Upstream clients for retrieval-augmented QA
	hfClient := services.NewHuggingFaceClient(cfg.HuggingFaceAPIKey)
	pineconeClient := services.NewPineconeClient(cfg.PineconeAPIKey, cfg.PineconeIndexHost, cfg.PineconeNamespace)
	qaService := services.NewQAService(hfClient, pineconeClient, hfClient)

	// Core services
	sessionManager := services.NewSessionManager()
	complaintFlow := services.NewComplaintFlowService(store, sessionManager, cfg.ComplaintPortalURL)
	menuService := services.NewMenuService(store)

	photosDir := os.Getenv("HOSTEL_PHOTOS_DIR")
	if photosDir == "" {
		photosDir = "hostel_photos"
	}
	// PHOTO_BASE_URL maps local photo files to public URLs so the
	// WhatsApp channel can attach them as media
	photoService := services.NewPhotoService(photosDir, os.Getenv("PHOTO_BASE_URL"))
	if err := photoService.Setup(); err != nil {
		log.Printf("⚠️  Failed to set up photos directory: %v", err)
	}

	chatbot := services.NewChatbotService(sessionManager, complaintFlow, menuService, photoService, qaService)

	log.Println("✅ All services initialized")

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "Arya Hostel Assistant v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Setup routes
	routes.SetupRoutes(app, store, chatbot, menuService, photoService, twilioService)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Println("========================================")
	log.Printf("🚀 Arya Hostel Assistant starting on port %s", port)
	log.Printf("📊 Storage: %s", getStorageType())
	log.Printf("🌍 Environment: %s", getEnvironment())
	log.Printf("📱 WhatsApp: %s", getWhatsAppStatus(twilioService))
	log.Println("========================================")

	log.Fatal(app.Listen(":" + port))
}

func getEnvironment() string {
	if os.Getenv("INSTANCE_CONNECTION_NAME") != "" {
		return "Production (Cloud Run)"
	}
	return "Development (Local)"
}

func getStorageType() string {
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		return "In-Memory (Testing)"
	}
	return "PostgreSQL Database"
}

func getWhatsAppStatus(twilioService *services.TwilioService) string {
	if twilioService == nil {
		return "Not configured"
	}
	return "Configured"
}
