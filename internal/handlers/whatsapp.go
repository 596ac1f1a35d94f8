package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/aryabhatt-hostel/arya-backend/internal/services"
)

// Twilio rejects messages with too many attachments; send the first few
// photos only, like the web channel's preview.
const maxWhatsAppMedia = 3

// WhatsAppSender delivers outbound WhatsApp messages. Satisfied by
// services.TwilioService; a nil sender disables delivery so the webhook
// can run locally without Twilio credentials.
type WhatsAppSender interface {
	SendWhatsAppMessage(to string, message string) error
	SendWhatsAppMedia(to string, message string, mediaURL string) error
}

// WhatsAppHandler handles WhatsApp webhook requests
type WhatsAppHandler struct {
	chatbot *services.ChatbotService
	sender  WhatsAppSender
}

// NewWhatsAppHandler creates a new WhatsApp handler
func NewWhatsAppHandler(chatbot *services.ChatbotService, sender WhatsAppSender) *WhatsAppHandler {
	return &WhatsAppHandler{
		chatbot: chatbot,
		sender:  sender,
	}
}

// TwilioWebhookPayload represents incoming WhatsApp message from Twilio
type TwilioWebhookPayload struct {
	MessageSid          string `form:"MessageSid"`
	AccountSid          string `form:"AccountSid"`
	MessagingServiceSid string `form:"MessagingServiceSid"`
	From                string `form:"From"` // WhatsApp number (whatsapp:+919876543210)
	To                  string `form:"To"`   // Your Twilio number
	Body                string `form:"Body"` // Message text
	NumMedia            string `form:"NumMedia"`
}

// HandleWebhook processes incoming WhatsApp messages
func (h *WhatsAppHandler) HandleWebhook(c *fiber.Ctx) error {
	var payload TwilioWebhookPayload

	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing webhook: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid webhook payload",
		})
	}

	log.Printf("📱 WhatsApp message from %s: %s", payload.From, payload.Body)

	// Process only incoming messages (not status updates)
	if payload.Body != "" && payload.From != "" {
		phone := strings.TrimPrefix(payload.From, "whatsapp:")

		// WhatsApp sessions are keyed by the sender's phone number
		reply := h.chatbot.ProcessMessage(c.Context(), phone, "whatsapp", payload.Body)

		response := reply.Response
		if reply.ComplaintURL != "" {
			response += "\n\n🔗 " + reply.ComplaintURL
		}

		media := mediaURLs(reply.Photos)
		if len(media) == 0 && len(reply.Photos) > 0 {
			// Photos exist but only as local paths Twilio cannot fetch
			response = "📷 Hostel photos are available in the web chat and on the hostel website."
		}

		if h.sender != nil && response != "" {
			if err := h.sender.SendWhatsAppMessage(phone, response); err != nil {
				log.Printf("❌ Failed to send WhatsApp response: %v", err)
			} else {
				log.Printf("✅ Response sent to %s", phone)
			}
			for _, mediaURL := range media {
				if err := h.sender.SendWhatsAppMedia(phone, "", mediaURL); err != nil {
					log.Printf("❌ Failed to send WhatsApp media %s: %v", mediaURL, err)
				}
			}
		} else {
			log.Printf("📤 Response (not sent - Twilio not configured): %s", response)
		}
	}

	// Acknowledge webhook receipt
	return c.SendStatus(fiber.StatusOK)
}

// mediaURLs keeps only the photos Twilio can fetch remotely, capped at
// maxWhatsAppMedia.
func mediaURLs(photos []string) []string {
	urls := []string{}
	for _, p := range photos {
		if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
			urls = append(urls, p)
		}
		if len(urls) == maxWhatsAppMedia {
			break
		}
	}
	return urls
}

// TestWebhookPayload is for testing without Twilio
type TestWebhookPayload struct {
	From    string `json:"from"`
	Message string `json:"message"`
}

// HandleTestWebhook processes test WhatsApp messages (for development)
func (h *WhatsAppHandler) HandleTestWebhook(c *fiber.Ctx) error {
	var payload TestWebhookPayload

	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid test payload",
		})
	}

	log.Printf("🧪 Test webhook received from %s: %s", payload.From, payload.Message)

	reply := h.chatbot.ProcessMessage(c.Context(), payload.From, "whatsapp", payload.Message)

	return c.JSON(fiber.Map{
		"success":  true,
		"response": reply.Response,
		"reply":    reply,
	})
}
