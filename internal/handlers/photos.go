package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aryabhatt-hostel/arya-backend/internal/services"
)

// PhotoHandler serves the static photo lookups
type PhotoHandler struct {
	photoService *services.PhotoService
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(photoService *services.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// ListCategories returns the valid photo categories
func (h *PhotoHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": h.photoService.Categories()})
}

// GetCategoryPhotos returns photo paths for one category
func (h *PhotoHandler) GetCategoryPhotos(c *fiber.Ctx) error {
	category := c.Params("category")
	if !h.photoService.ValidCategory(category) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":      "Invalid category: " + category,
			"categories": h.photoService.Categories(),
		})
	}

	subcategory := c.Query("subcategory")
	photos := h.photoService.PhotoPaths(category, subcategory)
	return c.JSON(fiber.Map{
		"category": category,
		"photos":   photos,
	})
}
