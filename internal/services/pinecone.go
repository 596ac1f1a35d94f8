package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// PineconeClient queries one Pinecone index over its REST API.
type PineconeClient struct {
	apiKey     string
	indexHost  string // e.g. arya-index-xxxx.svc.us-east-1.pinecone.io
	namespace  string
	httpClient *http.Client
}

// NewPineconeClient creates a client for the given index host and namespace
func NewPineconeClient(apiKey, indexHost, namespace string) *PineconeClient {
	return &PineconeClient{
		apiKey:     apiKey,
		indexHost:  strings.TrimSuffix(strings.TrimPrefix(indexHost, "https://"), "/"),
		namespace:  namespace,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// --- DTO ---

type pineconeQueryRequest struct {
	Vector          []float64 `json:"vector"`
	TopK            int       `json:"topK"`
	Namespace       string    `json:"namespace,omitempty"`
	IncludeMetadata bool      `json:"includeMetadata"`
}

type pineconeMatch struct {
	ID       string            `json:"id"`
	Score    float64           `json:"score"`
	Metadata map[string]string `json:"metadata"`
}

type pineconeQueryResponse struct {
	Matches []pineconeMatch `json:"matches"`
}

// --- Public Methods ---

// Query returns the text snippets of the topK nearest documents.
func (c *PineconeClient) Query(ctx context.Context, vector []float64, topK int) ([]string, error) {
	reqBody := pineconeQueryRequest{
		Vector:          vector,
		TopK:            topK,
		Namespace:       c.namespace,
		IncludeMetadata: true,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	endpoint := fmt.Sprintf("https://%s/query", c.indexHost)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pinecone post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("pinecone error %d: %s", resp.StatusCode, string(body))
	}

	var queryResp pineconeQueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&queryResp); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	snippets := make([]string, 0, len(queryResp.Matches))
	for _, match := range queryResp.Matches {
		if text, ok := match.Metadata["text"]; ok && text != "" {
			snippets = append(snippets, text)
		}
	}
	return snippets, nil
}
