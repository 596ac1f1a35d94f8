package services

import (
	"strings"

	"github.com/aryabhatt-hostel/arya-backend/internal/models"
)

// Intent is the routing label for one incoming message.
type Intent string

const (
	IntentQA        Intent = "qa"
	IntentMenu      Intent = "menu"
	IntentPhotos    Intent = "photos"
	IntentComplaint Intent = "complaint"
)

// complaintKeywords flag a message as a complaint. Matching is
// case-insensitive substring, any-match.
var complaintKeywords = []string{
	// Infrastructure issues
	"fan not working", "fan broken", "fan issue", "ceiling fan",
	"light not working", "light broken", "bulb not working", "electricity",
	"water problem", "no water", "tap not working", "plumbing",
	"wifi", "wi-fi", "internet", "network", "connection",
	"ac not working", "air conditioner", "cooling problem",
	"door broken", "lock issue", "window broken",

	// Cleanliness and maintenance
	"room dirty", "bathroom dirty", "cleaning issue", "garbage",
	"pest problem", "insects", "cockroach", "rats",
	"paint peeling", "wall damage", "ceiling leak",

	// Mess and food issues
	"food quality", "mess problem", "bad food", "food complaint",
	"hygiene issue", "kitchen problem",

	// Hostel services
	"laundry problem", "security issue", "noise complaint",
	"common room", "study room issue",

	// General complaint phrases
	"complain", "complaint", "problem", "issue", "broken",
	"not working", "malfunctioning", "damaged", "faulty",
}

var menuKeywords = []string{
	"menu", "mess menu", "food today", "breakfast", "lunch", "dinner",
	"what's cooking", "whats cooking", "meal",
}

var photoKeywords = []string{
	"photo", "picture", "image", "pic", "show me", "look", "view",
}

// categoryTerms maps complaint categories to their term lists. Order
// matters: the first category with a match wins.
var categoryTerms = []struct {
	category string
	terms    []string
}{
	{models.CategoryElectrical, []string{"fan", "light", "bulb", "electricity", "ac", "air conditioner"}},
	{models.CategoryPlumbing, []string{"water", "tap", "plumbing", "bathroom", "toilet"}},
	{models.CategoryInternet, []string{"wifi", "wi-fi", "internet", "network"}},
	{models.CategoryMessFood, []string{"food", "mess", "kitchen", "hygiene"}},
	{models.CategoryCleanliness, []string{"cleaning", "dirty", "garbage", "pest"}},
	{models.CategoryInfrastructure, []string{"door", "window", "lock", "paint", "wall", "ceiling"}},
	{models.CategoryHostelServices, []string{"noise", "security", "common room"}},
}

// Classify routes a raw message to one intent. Complaints win over menu
// and photo lookups; anything unmatched falls through to QA.
func Classify(message string) Intent {
	msg := strings.ToLower(message)

	if containsAny(msg, complaintKeywords) {
		return IntentComplaint
	}
	if containsAny(msg, menuKeywords) {
		return IntentMenu
	}
	if containsAny(msg, photoKeywords) {
		return IntentPhotos
	}
	return IntentQA
}

// ComplaintCategory picks the complaint category for a message.
func ComplaintCategory(message string) string {
	msg := strings.ToLower(message)

	for _, entry := range categoryTerms {
		if containsAny(msg, entry.terms) {
			return entry.category
		}
	}
	return models.CategoryGeneral
}

// IsComplaint reports whether the message reads as a complaint.
func IsComplaint(message string) bool {
	return containsAny(strings.ToLower(message), complaintKeywords)
}

func containsAny(msg string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(msg, keyword) {
			return true
		}
	}
	return false
}
