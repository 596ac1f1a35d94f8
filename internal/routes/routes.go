package routes

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/aryabhatt-hostel/arya-backend/internal/handlers"
	"github.com/aryabhatt-hostel/arya-backend/internal/middleware"
	"github.com/aryabhatt-hostel/arya-backend/internal/services"
	"github.com/aryabhatt-hostel/arya-backend/internal/storage"
)

// SetupRoutes configures all API routes
func SetupRoutes(
	app *fiber.App,
	store storage.Store,
	chatbot *services.ChatbotService,
	menuService *services.MenuService,
	photoService *services.PhotoService,
	twilioService *services.TwilioService,
) {
	chatHandler := handlers.NewChatHandler(chatbot)
	menuHandler := handlers.NewMenuHandler(store, menuService)
	photoHandler := handlers.NewPhotoHandler(photoService)
	complaintHandler := handlers.NewComplaintHandler(store)

	// A nil *TwilioService stored in the interface would be non-nil, so
	// convert only when Twilio is actually configured.
	var sender handlers.WhatsAppSender
	if twilioService != nil {
		sender = twilioService
	}
	whatsappHandler := handlers.NewWhatsAppHandler(chatbot, sender)

	// Root endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the Arya Hostel Assistant!",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"health":        "/health",
				"chat":          "/api/chat",
				"menu":          "/api/menu/today",
				"photos":        "/api/photos",
				"complaints":    "/api/complaints",
				"webhook":       "/webhook/whatsapp",
				"test_whatsapp": "/test/whatsapp",
			},
		})
	})

	// Health check
	app.Get("/health", handlers.HealthCheck)

	// API routes
	api := app.Group("/api")

	// Chat
	api.Post("/chat", chatHandler.HandleChat)

	// Mess menu
	menu := api.Group("/menu")
	menu.Get("/today", menuHandler.GetTodayMenu)
	menu.Get("/week", menuHandler.GetWeekMenu)
	menu.Get("/:day", menuHandler.GetDayMenu)

	// Photos
	photos := api.Group("/photos")
	photos.Get("/", photoHandler.ListCategories)
	photos.Get("/:category", photoHandler.GetCategoryPhotos)

	// Complaints (read-only; records are created by the dialogue flow)
	complaints := api.Group("/complaints")
	complaints.Get("/", complaintHandler.ListComplaints)
	complaints.Get("/:id", complaintHandler.GetComplaint)

	// ========== WEBHOOK ROUTES ==========
	webhooks := app.Group("/webhook")

	// WhatsApp webhook - ENVIRONMENT-AWARE VALIDATION
	if os.Getenv("ENVIRONMENT") == "development" || os.Getenv("DISABLE_WEBHOOK_VALIDATION") == "true" {
		// Development: Skip validation for ngrok
		webhooks.Post("/whatsapp", whatsappHandler.HandleWebhook)
	} else {
		// Production: Validate webhook signature
		webhooks.Post("/whatsapp", middleware.ValidateTwilioSignature(), whatsappHandler.HandleWebhook)
	}

	// ========== TEST ROUTES (Development Only) ==========
	app.Post("/test/whatsapp", whatsappHandler.HandleTestWebhook)
}
