package storage

import (
	"github.com/aryabhatt-hostel/arya-backend/internal/models"
)

// Store defines the interface for storage operations
type Store interface {
	// Complaint operations
	CreateComplaint(complaint *models.Complaint) (*models.Complaint, error)
	GetComplaint(complaintID string) (*models.Complaint, error)
	GetComplaintsByEmail(email string) ([]*models.Complaint, error)
	GetComplaintsByStatus(status string) ([]*models.Complaint, error)
	GetAllComplaints() ([]*models.Complaint, error)

	// Mess menu operations
	GetMenuForDay(dayOfWeek string) (*models.MessMenu, error)
	GetWeekMenu() ([]*models.MessMenu, error)
	UpsertMenu(menu *models.MessMenu) error
}
