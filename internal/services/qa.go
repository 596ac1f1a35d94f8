package services

import (
	"context"
	"fmt"
	"strings"
)

const qaTopK = 3

const qaPromptTemplate = `You are Arya, the official bot of Arya Bhatt Hostel. Your role is to provide accurate and helpful information about the hostel.

Context information from the knowledge base:
%s

Guidelines:
- Provide concise, accurate answers based on the given context
- If information is not available in the context, politely say you don't know
- Be friendly and professional in your responses
- Keep responses brief but informative

Question: %s
Answer:`

// Embedder produces an embedding vector for a question.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Generator completes a rendered prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Retriever finds knowledge-base snippets near a vector.
type Retriever interface {
	Query(ctx context.Context, vector []float64, topK int) ([]string, error)
}

// QAService answers general hostel questions through the retrieval-
// augmented pipeline: embed the question, fetch nearby snippets, then
// generate over the stuffed prompt.
type QAService struct {
	embedder  Embedder
	retriever Retriever
	generator Generator
}

// NewQAService creates a new QA service
func NewQAService(embedder Embedder, retriever Retriever, generator Generator) *QAService {
	return &QAService{
		embedder:  embedder,
		retriever: retriever,
		generator: generator,
	}
}

// Answer responds to one question from the knowledge base.
func (s *QAService) Answer(ctx context.Context, question string) (string, error) {
	vector, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return "", fmt.Errorf("failed to embed question: %w", err)
	}

	snippets, err := s.retriever.Query(ctx, vector, qaTopK)
	if err != nil {
		return "", fmt.Errorf("failed to query knowledge base: %w", err)
	}

	prompt := fmt.Sprintf(qaPromptTemplate, strings.Join(snippets, "\n"), question)

	answer, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate answer: %w", err)
	}

	return strings.TrimSpace(answer), nil
}
