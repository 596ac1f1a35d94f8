package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aryabhatt-hostel/arya-backend/internal/storage"
)

// ComplaintHandler exposes finalized complaint records (read-only)
type ComplaintHandler struct {
	store storage.Store
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(store storage.Store) *ComplaintHandler {
	return &ComplaintHandler{store: store}
}

// GetComplaint returns one complaint by its ID
func (h *ComplaintHandler) GetComplaint(c *fiber.Ctx) error {
	complaintID := c.Params("id")
	complaint, err := h.store.GetComplaint(complaintID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Complaint not found",
		})
	}
	return c.JSON(complaint)
}

// ListComplaints returns all complaints, optionally filtered by status
// or reporter email
func (h *ComplaintHandler) ListComplaints(c *fiber.Ctx) error {
	if email := c.Query("email"); email != "" {
		complaints, err := h.store.GetComplaintsByEmail(email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"complaints": complaints, "count": len(complaints)})
	}

	if status := c.Query("status"); status != "" {
		complaints, err := h.store.GetComplaintsByStatus(status)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"complaints": complaints, "count": len(complaints)})
	}

	complaints, err := h.store.GetAllComplaints()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"complaints": complaints, "count": len(complaints)})
}
