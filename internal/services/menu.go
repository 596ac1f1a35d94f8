package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/aryabhatt-hostel/arya-backend/internal/models"
	"github.com/aryabhatt-hostel/arya-backend/internal/storage"
)

// Meal time windows (hour of day, inclusive).
type mealWindow struct {
	meal  string
	start int
	end   int
}

var mealWindows = []mealWindow{
	{"morning", 5, 10},  // 5 AM to 10 AM
	{"evening", 11, 16}, // 11 AM to 4 PM
	{"night", 17, 23},   // 5 PM to 11 PM
}

// MenuService answers mess menu queries from the store.
type MenuService struct {
	store storage.Store
}

// NewMenuService creates a new menu service
func NewMenuService(store storage.Store) *MenuService {
	return &MenuService{store: store}
}

// CurrentMeal returns the meal slot for the given time; outside regular
// meal hours it defaults to morning.
func CurrentMeal(now time.Time) string {
	hour := now.Hour()
	for _, w := range mealWindows {
		if hour >= w.start && hour <= w.end {
			return w.meal
		}
	}
	return "morning"
}

// TodayMenu formats the current meal's menu for the given time.
func (s *MenuService) TodayMenu(now time.Time) (string, error) {
	day := now.Weekday().String()
	menu, err := s.store.GetMenuForDay(day)
	if err != nil {
		return "", fmt.Errorf("failed to get today's menu: %w", err)
	}

	meal := CurrentMeal(now)
	var mealTitle, items string
	switch meal {
	case "morning":
		mealTitle, items = "🌅 Breakfast", menu.MorningMenu
	case "evening":
		mealTitle, items = "🌞 Lunch", menu.EveningMenu
	case "night":
		mealTitle, items = "🌙 Dinner", menu.NightMenu
	}

	lines := []string{
		fmt.Sprintf("🕐 Current Time: %s", now.Format("3:04 PM")),
		fmt.Sprintf("📅 %s's Menu\n", day),
		fmt.Sprintf("%s:", mealTitle),
		items,
	}

	// Dessert is only served with lunch and dinner
	if menu.Dessert != "OFF" && (meal == "evening" || meal == "night") {
		lines = append(lines, fmt.Sprintf("\n🍨 Dessert: %s", menu.Dessert))
	}

	return strings.Join(lines, "\n"), nil
}

// MenuForDay formats the full menu for one day.
func (s *MenuService) MenuForDay(day string) (string, error) {
	menu, err := s.store.GetMenuForDay(day)
	if err != nil {
		return "", fmt.Errorf("failed to get menu for %s: %w", day, err)
	}
	return formatDayMenu(menu), nil
}

// WeekMenu formats the whole week's menu, Sunday first.
func (s *MenuService) WeekMenu() (string, error) {
	week, err := s.store.GetWeekMenu()
	if err != nil {
		return "", fmt.Errorf("failed to get weekly menu: %w", err)
	}
	if len(week) == 0 {
		return "", fmt.Errorf("no menu data available")
	}

	sections := make([]string, 0, len(week))
	for _, menu := range week {
		sections = append(sections, formatDayMenu(menu))
	}
	return strings.Join(sections, "\n\n"), nil
}

func formatDayMenu(menu *models.MessMenu) string {
	out := fmt.Sprintf("%s menu:\nMorning: %s\nEvening: %s\nNight: %s",
		menu.DayOfWeek, menu.MorningMenu, menu.EveningMenu, menu.NightMenu)
	if menu.Dessert != "OFF" {
		out += fmt.Sprintf("\nDessert: %s", menu.Dessert)
	}
	return out
}
