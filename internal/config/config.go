package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds credentials and endpoints for the upstream services the
// QA pipeline talks to, plus the complaint portal base URL.
type Config struct {
	PineconeAPIKey     string
	PineconeIndexHost  string
	PineconeNamespace  string
	HuggingFaceAPIKey  string
	ComplaintPortalURL string
}

// Required environment variables for the retrieval-augmented QA pipeline.
var requiredVars = []string{
	"PINECONE_API_KEY",
	"PINECONE_INDEX_HOST",
	"HUGGING_FACE_API",
}

// Load reads configuration from the environment. Call after godotenv has
// run in main. Returns an error naming every missing required variable.
func Load() (*Config, error) {
	missing := []string{}
	for _, v := range requiredVars {
		if os.Getenv(v) == "" {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	cfg := &Config{
		PineconeAPIKey:     os.Getenv("PINECONE_API_KEY"),
		PineconeIndexHost:  os.Getenv("PINECONE_INDEX_HOST"),
		PineconeNamespace:  os.Getenv("PINECONE_NAMESPACE"),
		HuggingFaceAPIKey:  os.Getenv("HUGGING_FACE_API"),
		ComplaintPortalURL: os.Getenv("COMPLAINT_PORTAL_URL"),
	}
	if cfg.PineconeNamespace == "" {
		cfg.PineconeNamespace = "arya-namespace"
	}
	if cfg.ComplaintPortalURL == "" {
		cfg.ComplaintPortalURL = "https://grs.ietlucknow.ac.in/open.php"
	}
	return cfg, nil
}
