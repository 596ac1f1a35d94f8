package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PhotoService serves hostel photos from a category-structured directory
// tree: <root>/<category>/<subcategory>/*.jpg|png. When a base URL is
// configured, results are returned as client-fetchable URLs instead of
// filesystem paths (WhatsApp media delivery needs a URL Twilio can reach).
type PhotoService struct {
	rootDir    string
	baseURL    string
	categories map[string][]string
}

// NewPhotoService creates a photo service rooted at the given directory.
// baseURL may be empty; paths are then returned as-is.
func NewPhotoService(rootDir, baseURL string) *PhotoService {
	return &PhotoService{
		rootDir: rootDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		categories: map[string][]string{
			"rooms":      {"rooms"},
			"mess":       {"dining"},
			"facilities": {"sports"},
			"exterior":   {"building", "entrance", "garden"},
		},
	}
}

// Setup creates the category directory structure if missing.
func (s *PhotoService) Setup() error {
	for category, subcategories := range s.categories {
		for _, sub := range subcategories {
			dir := filepath.Join(s.rootDir, category, sub)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create photo directory %s: %w", dir, err)
			}
		}
	}
	return nil
}

// Categories lists the valid photo categories.
func (s *PhotoService) Categories() []string {
	names := make([]string, 0, len(s.categories))
	for category := range s.categories {
		names = append(names, category)
	}
	sort.Strings(names)
	return names
}

// PhotoPaths returns photo paths for a category, optionally narrowed to
// one subcategory. An empty category returns every photo.
func (s *PhotoService) PhotoPaths(category, subcategory string) []string {
	paths := []string{}

	switch {
	case category != "" && subcategory != "":
		paths = append(paths, globPhotos(filepath.Join(s.rootDir, category, subcategory))...)
	case category != "":
		for _, sub := range s.categories[category] {
			paths = append(paths, globPhotos(filepath.Join(s.rootDir, category, sub))...)
		}
	default:
		for cat, subs := range s.categories {
			for _, sub := range subs {
				paths = append(paths, globPhotos(filepath.Join(s.rootDir, cat, sub))...)
			}
		}
	}

	sort.Strings(paths)
	for i, p := range paths {
		paths[i] = s.publicURL(p)
	}
	return paths
}

// publicURL maps a photo path under the root directory to a URL chat
// clients can fetch. Without a base URL the path is returned unchanged.
func (s *PhotoService) publicURL(path string) string {
	if s.baseURL == "" {
		return path
	}
	rel, err := filepath.Rel(s.rootDir, path)
	if err != nil {
		return path
	}
	return s.baseURL + "/" + filepath.ToSlash(rel)
}

// ValidCategory reports whether the category exists.
func (s *PhotoService) ValidCategory(category string) bool {
	_, ok := s.categories[category]
	return ok
}

// HandlePhotoQuery returns photos relevant to a free-text question, or
// nil when the question is not photo-related.
func (s *PhotoService) HandlePhotoQuery(question string) []string {
	q := strings.ToLower(question)

	if !containsAny(q, photoKeywords) {
		return nil
	}

	photos := []string{}
	for category, subcategories := range s.categories {
		if !strings.Contains(q, category) {
			continue
		}
		for _, sub := range subcategories {
			if strings.Contains(q, strings.ReplaceAll(sub, "_", " ")) {
				photos = append(photos, s.PhotoPaths(category, sub)...)
			}
		}
		// No specific subcategory mentioned: the whole category
		if len(photos) == 0 {
			photos = append(photos, s.PhotoPaths(category, "")...)
		}
	}

	// Generic "show me the hostel" style questions get everything
	if len(photos) == 0 && containsAny(q, []string{"hostel", "building", "campus"}) {
		photos = append(photos, s.PhotoPaths("", "")...)
	}

	if len(photos) == 0 {
		return nil
	}
	sort.Strings(photos)
	return photos
}

func globPhotos(dir string) []string {
	paths := []string{}
	for _, pattern := range []string{"*.jpg", "*.png"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			log.Printf("Error globbing photos in %s: %v", dir, err)
			continue
		}
		paths = append(paths, matches...)
	}
	return paths
}
