package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/aryabhatt-hostel/arya-backend/internal/services"
)

// ChatHandler serves the web chat channel
type ChatHandler struct {
	chatbot *services.ChatbotService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatbot *services.ChatbotService) *ChatHandler {
	return &ChatHandler{chatbot: chatbot}
}

// ChatRequest is one web chat turn
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// HandleChat processes one conversation turn
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please provide a message",
		})
	}

	// Mint a session for first-time clients
	if req.SessionID == "" {
		req.SessionID = services.NewSessionID()
	}

	log.Printf("💬 Chat message from session %s: %s", req.SessionID, req.Message)

	reply := h.chatbot.ProcessMessage(c.Context(), req.SessionID, "web", req.Message)
	return c.JSON(reply)
}
