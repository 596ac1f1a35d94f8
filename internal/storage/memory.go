package storage

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aryabhatt-hostel/arya-backend/internal/models"
)

// MemoryStore holds all data in memory for local development and tests
type MemoryStore struct {
	complaints map[string]*models.Complaint
	menus      map[string]*models.MessMenu

	// Mutexes for thread safety
	complaintMu sync.RWMutex
	menuMu      sync.RWMutex

	complaintCounter int
}

// NewMemoryStore creates a new in-memory storage pre-seeded with a default
// weekly mess menu so the bot can answer menu queries without a database.
func NewMemoryStore() *MemoryStore {
	m := &MemoryStore{
		complaints: make(map[string]*models.Complaint),
		menus:      make(map[string]*models.MessMenu),
	}
	m.seedDefaultMenu()
	return m
}

// Complaint operations

func (m *MemoryStore) CreateComplaint(complaint *models.Complaint) (*models.Complaint, error) {
	m.complaintMu.Lock()
	defer m.complaintMu.Unlock()

	m.complaintCounter++
	if complaint.ComplaintID == "" {
		complaint.ComplaintID = fmt.Sprintf("CMP%05d", m.complaintCounter)
	}
	if complaint.Category == "" {
		complaint.Category = models.CategoryGeneral
	}
	if complaint.Status == "" {
		complaint.Status = "submitted"
	}
	complaint.CreatedAt = time.Now()
	complaint.UpdatedAt = time.Now()

	m.complaints[complaint.ComplaintID] = complaint
	return complaint, nil
}

func (m *MemoryStore) GetComplaint(complaintID string) (*models.Complaint, error) {
	m.complaintMu.RLock()
	defer m.complaintMu.RUnlock()

	complaint, exists := m.complaints[complaintID]
	if !exists {
		return nil, fmt.Errorf("complaint not found")
	}
	return complaint, nil
}

func (m *MemoryStore) GetComplaintsByEmail(email string) ([]*models.Complaint, error) {
	m.complaintMu.RLock()
	defer m.complaintMu.RUnlock()

	results := []*models.Complaint{}
	for _, c := range m.complaints {
		if strings.EqualFold(c.Email, email) {
			results = append(results, c)
		}
	}
	return results, nil
}

func (m *MemoryStore) GetComplaintsByStatus(status string) ([]*models.Complaint, error) {
	m.complaintMu.RLock()
	defer m.complaintMu.RUnlock()

	results := []*models.Complaint{}
	for _, c := range m.complaints {
		if c.Status == status {
			results = append(results, c)
		}
	}
	return results, nil
}

func (m *MemoryStore) GetAllComplaints() ([]*models.Complaint, error) {
	m.complaintMu.RLock()
	defer m.complaintMu.RUnlock()

	results := []*models.Complaint{}
	for _, c := range m.complaints {
		results = append(results, c)
	}
	return results, nil
}

// Mess menu operations

func (m *MemoryStore) GetMenuForDay(dayOfWeek string) (*models.MessMenu, error) {
	m.menuMu.RLock()
	defer m.menuMu.RUnlock()

	menu, exists := m.menus[normalizeDay(dayOfWeek)]
	if !exists {
		return nil, fmt.Errorf("menu not found for %s", dayOfWeek)
	}
	return menu, nil
}

func (m *MemoryStore) GetWeekMenu() ([]*models.MessMenu, error) {
	m.menuMu.RLock()
	defer m.menuMu.RUnlock()

	week := []*models.MessMenu{}
	for _, day := range models.WeekDays {
		if menu, exists := m.menus[day]; exists {
			week = append(week, menu)
		}
	}
	return week, nil
}

func (m *MemoryStore) UpsertMenu(menu *models.MessMenu) error {
	m.menuMu.Lock()
	defer m.menuMu.Unlock()

	day := normalizeDay(menu.DayOfWeek)
	if day == "" {
		return fmt.Errorf("invalid day of week: %s", menu.DayOfWeek)
	}
	menu.DayOfWeek = day
	menu.UpdatedAt = time.Now()
	m.menus[day] = menu
	return nil
}

// normalizeDay maps "monday"/"MONDAY" to "Monday"; returns "" for unknown days.
func normalizeDay(day string) string {
	for _, d := range models.WeekDays {
		if strings.EqualFold(d, day) {
			return d
		}
	}
	return ""
}

func (m *MemoryStore) seedDefaultMenu() {
	defaults := []*models.MessMenu{
		{DayOfWeek: "Sunday", MorningMenu: "Aloo Paratha, Curd, Tea", EveningMenu: "Chole Bhature, Rice, Salad", NightMenu: "Paneer Butter Masala, Roti, Rice", Dessert: "Gulab Jamun"},
		{DayOfWeek: "Monday", MorningMenu: "Poha, Banana, Tea", EveningMenu: "Rajma, Rice, Roti", NightMenu: "Mix Veg, Roti, Dal", Dessert: "OFF"},
		{DayOfWeek: "Tuesday", MorningMenu: "Idli, Sambhar, Chutney", EveningMenu: "Kadhi Pakora, Rice, Roti", NightMenu: "Aloo Gobhi, Roti, Dal Fry", Dessert: "OFF"},
		{DayOfWeek: "Wednesday", MorningMenu: "Bread Butter, Omelette, Tea", EveningMenu: "Dal Makhani, Jeera Rice, Roti", NightMenu: "Bhindi Masala, Roti, Dal", Dessert: "Kheer"},
		{DayOfWeek: "Thursday", MorningMenu: "Upma, Coconut Chutney, Tea", EveningMenu: "Chana Masala, Rice, Roti", NightMenu: "Matar Paneer, Roti, Rice", Dessert: "OFF"},
		{DayOfWeek: "Friday", MorningMenu: "Paratha, Pickle, Tea", EveningMenu: "Veg Biryani, Raita, Papad", NightMenu: "Dal Tadka, Roti, Rice", Dessert: "Ice Cream"},
		{DayOfWeek: "Saturday", MorningMenu: "Dosa, Sambhar, Chutney", EveningMenu: "Veg Pulao, Boondi Raita", NightMenu: "Kofta Curry, Roti, Rice", Dessert: "OFF"},
	}

	for _, menu := range defaults {
		m.menus[menu.DayOfWeek] = menu
	}
}
