package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Complaint is a finalized hostel complaint record. It is created only
// after the dialogue flow has collected and validated every field, and
// is never updated afterwards.
type Complaint struct {
	gorm.Model
	ComplaintID string `gorm:"uniqueIndex;not null" json:"complaint_id"`
	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"index;not null" json:"email"`
	Phone       string `gorm:"not null" json:"phone"`
	RoomNumber  string `gorm:"index;not null" json:"room_number"`
	Category    string `json:"category"`
	Description string `json:"description"`
	PortalURL   string `json:"portal_url"`
	Status      string `gorm:"default:'submitted'" json:"status"` // submitted, acknowledged, resolved
}

// Complaint categories, matched by the intent classifier.
const (
	CategoryElectrical     = "Electrical"
	CategoryPlumbing       = "Plumbing"
	CategoryInternet       = "Internet/WiFi"
	CategoryMessFood       = "Mess/Food"
	CategoryCleanliness    = "Cleanliness"
	CategoryInfrastructure = "Infrastructure"
	CategoryHostelServices = "Hostel Services"
	CategoryGeneral        = "General"
)

func (c *Complaint) BeforeCreate(tx *gorm.DB) error {
	if c.ComplaintID == "" {
		c.ComplaintID = fmt.Sprintf("CMP%d", time.Now().UnixNano())
	}
	if c.Category == "" {
		c.Category = CategoryGeneral
	}
	return nil
}
