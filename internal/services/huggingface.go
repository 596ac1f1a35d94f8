package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	embeddingModel  = "intfloat/multilingual-e5-large"
	generationModel = "mistralai/Mixtral-8x7B-Instruct-v0.1"

	hfInferenceBase = "https://api-inference.huggingface.co"
)

// HuggingFaceClient talks to the hosted Inference API for embeddings and
// text generation.
type HuggingFaceClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewHuggingFaceClient creates a client for the hosted Inference API
func NewHuggingFaceClient(apiKey string) *HuggingFaceClient {
	return &HuggingFaceClient{
		apiKey:     apiKey,
		baseURL:    hfInferenceBase,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// --- DTO ---

type hfEmbedRequest struct {
	Inputs []string `json:"inputs"`
}

type hfGenerateRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters hfGenerateParameters `json:"parameters"`
}

type hfGenerateParameters struct {
	Temperature    float64 `json:"temperature"`
	TopK           int     `json:"top_k"`
	MaxNewTokens   int     `json:"max_new_tokens"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfGenerateResponse struct {
	GeneratedText string `json:"generated_text"`
}

// --- Public Methods ---

// Embed converts a question into an embedding vector.
func (c *HuggingFaceClient) Embed(ctx context.Context, text string) ([]float64, error) {
	endpoint := fmt.Sprintf("%s/pipeline/feature-extraction/%s", c.baseURL, embeddingModel)

	var vectors [][]float64
	if err := c.postJSON(ctx, endpoint, hfEmbedRequest{Inputs: []string{text}}, &vectors); err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("empty embedding response")
	}
	return vectors[0], nil
}

// Generate runs the generation model over a fully rendered prompt.
func (c *HuggingFaceClient) Generate(ctx context.Context, prompt string) (string, error) {
	endpoint := fmt.Sprintf("%s/models/%s", c.baseURL, generationModel)

	req := hfGenerateRequest{
		Inputs: prompt,
		Parameters: hfGenerateParameters{
			Temperature:    0.7,
			TopK:           50,
			MaxNewTokens:   512,
			ReturnFullText: false,
		},
	}

	var resp []hfGenerateResponse
	if err := c.postJSON(ctx, endpoint, req, &resp); err != nil {
		return "", err
	}
	if len(resp) == 0 {
		return "", fmt.Errorf("empty generation response")
	}
	return resp[0].GeneratedText, nil
}

// --- Helpers ---

func (c *HuggingFaceClient) postJSON(ctx context.Context, endpoint string, payload interface{}, out interface{}) error {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("huggingface post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("huggingface error %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
