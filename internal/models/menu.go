package models

import "gorm.io/gorm"

// MessMenu holds one day's mess menu. One row per day of the week.
type MessMenu struct {
	gorm.Model
	DayOfWeek   string `gorm:"uniqueIndex;not null" json:"day_of_week"` // Sunday..Saturday
	MorningMenu string `json:"morning_menu"`
	EveningMenu string `json:"evening_menu"`
	NightMenu   string `json:"night_menu"`
	Dessert     string `gorm:"default:'OFF'" json:"dessert"` // "OFF" when no dessert is served
}

// WeekDays is the display order for the weekly menu.
var WeekDays = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}
