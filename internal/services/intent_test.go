package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aryabhatt-hostel/arya-backend/internal/models"
	"github.com/aryabhatt-hostel/arya-backend/internal/services"
)

// TestClassify_RoutesByKeyword verifies that each configured keyword
// family routes to its intent, with QA as the default.
func TestClassify_RoutesByKeyword(t *testing.T) {
	cases := []struct {
		message string
		want    services.Intent
	}{
		{"my fan is not working", services.IntentComplaint},
		{"the wifi keeps dropping", services.IntentComplaint},
		{"I want to complain about the bathroom", services.IntentComplaint},
		{"There is a water problem on the second floor", services.IntentComplaint},
		{"what's on the menu today?", services.IntentMenu},
		{"what time is breakfast served", services.IntentMenu},
		{"show me pictures of the rooms", services.IntentPhotos},
		{"can I see a photo of the building", services.IntentPhotos},
		{"when was the hostel founded?", services.IntentQA},
		{"who is the warden", services.IntentQA},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, services.Classify(tc.message), "message: %q", tc.message)
	}
}

// TestClassify_ComplaintWinsOverOtherIntents ensures complaint keywords
// take priority even when menu or photo words appear in the message.
func TestClassify_ComplaintWinsOverOtherIntents(t *testing.T) {
	assert.Equal(t, services.IntentComplaint, services.Classify("I have a food complaint about today's menu"))
	assert.Equal(t, services.IntentComplaint, services.Classify("look, the light is broken"))
}

// TestComplaintCategory_MapsTermsToCategories checks the category term
// lists against the fixed label set.
func TestComplaintCategory_MapsTermsToCategories(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"the ceiling fan is broken", models.CategoryElectrical},
		{"no electricity since morning", models.CategoryElectrical},
		{"the tap is leaking", models.CategoryPlumbing},
		{"wifi is very slow", models.CategoryInternet},
		{"the mess food is stale", models.CategoryMessFood},
		{"garbage has not been collected", models.CategoryCleanliness},
		{"the window lock is damaged", models.CategoryInfrastructure},
		{"too much noise at night", models.CategoryHostelServices},
		{"something feels off", models.CategoryGeneral},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, services.ComplaintCategory(tc.message), "message: %q", tc.message)
	}
}

// TestIsComplaint_MatchesCaseInsensitively verifies matching ignores case.
func TestIsComplaint_MatchesCaseInsensitively(t *testing.T) {
	assert.True(t, services.IsComplaint("The FAN IS NOT WORKING in my room"))
	assert.False(t, services.IsComplaint("what are the hostel timings"))
}
