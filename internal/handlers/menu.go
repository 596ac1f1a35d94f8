package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/aryabhatt-hostel/arya-backend/internal/services"
	"github.com/aryabhatt-hostel/arya-backend/internal/storage"
)

// MenuHandler serves mess menu lookups
type MenuHandler struct {
	store       storage.Store
	menuService *services.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(store storage.Store, menuService *services.MenuService) *MenuHandler {
	return &MenuHandler{store: store, menuService: menuService}
}

// GetTodayMenu returns the current meal's menu
func (h *MenuHandler) GetTodayMenu(c *fiber.Ctx) error {
	text, err := h.menuService.TodayMenu(time.Now())
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Sorry, I couldn't retrieve the menu at the moment.",
		})
	}
	return c.JSON(fiber.Map{"menu": text})
}

// GetWeekMenu returns the full weekly menu, Sunday first
func (h *MenuHandler) GetWeekMenu(c *fiber.Ctx) error {
	week, err := h.store.GetWeekMenu()
	if err != nil || len(week) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No menu data available",
		})
	}
	return c.JSON(fiber.Map{"week": week})
}

// GetDayMenu returns the menu for one day of the week
func (h *MenuHandler) GetDayMenu(c *fiber.Ctx) error {
	day := c.Params("day")
	menu, err := h.store.GetMenuForDay(day)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No menu found for " + day,
		})
	}
	return c.JSON(menu)
}
