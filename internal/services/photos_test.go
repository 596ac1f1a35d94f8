package services_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryabhatt-hostel/arya-backend/internal/services"
)

func newTestPhotoService(t *testing.T) *services.PhotoService {
	t.Helper()
	return newTestPhotoServiceWithBaseURL(t, "")
}

func newTestPhotoServiceWithBaseURL(t *testing.T, baseURL string) *services.PhotoService {
	t.Helper()
	root := t.TempDir()
	svc := services.NewPhotoService(root, baseURL)
	require.NoError(t, svc.Setup())

	seed := map[string][]string{
		"rooms/rooms":       {"single.jpg", "double.png"},
		"mess/dining":       {"hall.jpg"},
		"exterior/building": {"front.jpg"},
	}
	for dir, files := range seed {
		for _, name := range files {
			path := filepath.Join(root, filepath.FromSlash(dir), name)
			require.NoError(t, os.WriteFile(path, []byte("img"), 0o644))
		}
	}
	return svc
}

// TestPhotoPaths_ByCategoryAndSubcategory verifies directory scoping.
func TestPhotoPaths_ByCategoryAndSubcategory(t *testing.T) {
	svc := newTestPhotoService(t)

	rooms := svc.PhotoPaths("rooms", "")
	assert.Len(t, rooms, 2)

	dining := svc.PhotoPaths("mess", "dining")
	assert.Len(t, dining, 1)
	assert.Contains(t, dining[0], "hall.jpg")

	all := svc.PhotoPaths("", "")
	assert.Len(t, all, 4)

	// Facilities has no photos seeded
	assert.Empty(t, svc.PhotoPaths("facilities", ""))
}

// TestHandlePhotoQuery_MatchesCategories routes free-text photo
// questions to the right directories.
func TestHandlePhotoQuery_MatchesCategories(t *testing.T) {
	svc := newTestPhotoService(t)

	rooms := svc.HandlePhotoQuery("Show me the hostel rooms")
	assert.Len(t, rooms, 2)

	mess := svc.HandlePhotoQuery("Can I see pictures of the mess?")
	assert.Len(t, mess, 1)

	// Generic hostel question returns everything
	everything := svc.HandlePhotoQuery("Show me the hostel building")
	assert.NotEmpty(t, everything)
}

// TestPhotoPaths_MapsToPublicURLs checks that a configured base URL
// turns local files into fetchable links, ordered and slash-normalized.
func TestPhotoPaths_MapsToPublicURLs(t *testing.T) {
	svc := newTestPhotoServiceWithBaseURL(t, "https://photos.example/hostel/")

	rooms := svc.PhotoPaths("rooms", "rooms")
	require.Len(t, rooms, 2)
	assert.Equal(t, "https://photos.example/hostel/rooms/rooms/double.png", rooms[0])
	assert.Equal(t, "https://photos.example/hostel/rooms/rooms/single.jpg", rooms[1])
}

// TestHandlePhotoQuery_NonPhotoQuestion returns nil for questions with
// no photo keywords.
func TestHandlePhotoQuery_NonPhotoQuestion(t *testing.T) {
	svc := newTestPhotoService(t)

	assert.Nil(t, svc.HandlePhotoQuery("what time does the mess open"))
}

// TestValidCategory checks category validation against the fixed tree.
func TestValidCategory(t *testing.T) {
	svc := newTestPhotoService(t)

	assert.True(t, svc.ValidCategory("rooms"))
	assert.True(t, svc.ValidCategory("exterior"))
	assert.False(t, svc.ValidCategory("library"))
}
