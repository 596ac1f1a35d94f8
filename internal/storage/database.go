package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aryabhatt-hostel/arya-backend/internal/models"
)

// DatabaseStore persists data in PostgreSQL via GORM
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a store backed by the given GORM connection
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// Complaint operations

func (d *DatabaseStore) CreateComplaint(complaint *models.Complaint) (*models.Complaint, error) {
	if err := d.db.Create(complaint).Error; err != nil {
		return nil, fmt.Errorf("failed to create complaint: %w", err)
	}
	return complaint, nil
}

func (d *DatabaseStore) GetComplaint(complaintID string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := d.db.Where("complaint_id = ?", complaintID).First(&complaint).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("complaint not found")
	}
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (d *DatabaseStore) GetComplaintsByEmail(email string) ([]*models.Complaint, error) {
	var complaints []*models.Complaint
	err := d.db.Where("LOWER(email) = LOWER(?)", email).Find(&complaints).Error
	return complaints, err
}

func (d *DatabaseStore) GetComplaintsByStatus(status string) ([]*models.Complaint, error) {
	var complaints []*models.Complaint
	err := d.db.Where("status = ?", status).Find(&complaints).Error
	return complaints, err
}

func (d *DatabaseStore) GetAllComplaints() ([]*models.Complaint, error) {
	var complaints []*models.Complaint
	err := d.db.Order("created_at DESC").Find(&complaints).Error
	return complaints, err
}

// Mess menu operations

func (d *DatabaseStore) GetMenuForDay(dayOfWeek string) (*models.MessMenu, error) {
	var menu models.MessMenu
	err := d.db.Where("day_of_week = ?", normalizeDay(dayOfWeek)).First(&menu).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("menu not found for %s", dayOfWeek)
	}
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (d *DatabaseStore) GetWeekMenu() ([]*models.MessMenu, error) {
	var menus []*models.MessMenu
	if err := d.db.Find(&menus).Error; err != nil {
		return nil, err
	}

	// Return rows in calendar order, Sunday first
	byDay := make(map[string]*models.MessMenu, len(menus))
	for _, menu := range menus {
		byDay[menu.DayOfWeek] = menu
	}
	week := []*models.MessMenu{}
	for _, day := range models.WeekDays {
		if menu, exists := byDay[day]; exists {
			week = append(week, menu)
		}
	}
	return week, nil
}

func (d *DatabaseStore) UpsertMenu(menu *models.MessMenu) error {
	day := normalizeDay(menu.DayOfWeek)
	if day == "" {
		return fmt.Errorf("invalid day of week: %s", menu.DayOfWeek)
	}
	menu.DayOfWeek = day

	var existing models.MessMenu
	err := d.db.Where("day_of_week = ?", day).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return d.db.Create(menu).Error
	}
	if err != nil {
		return err
	}

	existing.MorningMenu = menu.MorningMenu
	existing.EveningMenu = menu.EveningMenu
	existing.NightMenu = menu.NightMenu
	existing.Dessert = menu.Dessert
	return d.db.Save(&existing).Error
}
