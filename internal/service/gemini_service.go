package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"

	"github.com/fadilmartias/rozgar/internal/config"
	"github.com/fadilmartias/rozgar/internal/model"
	"google.golang.org/genai"
)

// Embedder turns text into a vector for job similarity search.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type GeminiService struct {
	Client         *genai.Client
	Model          string
	EmbeddingModel string
	policy         *RetryPolicy

	mu                sync.Mutex
	consecutiveErrors int
	circuitBreakerMax int
}

func NewGeminiService(ctx context.Context, cfg *config.GeminiConfig, policy *RetryPolicy) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiService{
		Client:            client,
		Model:             cfg.Model,
		EmbeddingModel:    cfg.EmbeddingModel,
		policy:            policy,
		circuitBreakerMax: 5,
	}, nil
}

func (s *GeminiService) Name() string {
	return "gemini"
}

func (s *GeminiService) GenerateQuestions(ctx context.Context, title string) (string, error) {
	if err := s.checkCircuit(); err != nil {
		return "", err
	}

	prompt := questionSystemPrompt + "\n\n" + BuildQuestionPrompt(title)
	genConfig := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.3)),
		ResponseMIMEType: "application/json",
	}

	var text string
	err := s.policy.Do(ctx, "gemini.GenerateQuestions", func(ctx context.Context) error {
		result, err := s.Client.Models.GenerateContent(ctx, s.Model, genai.Text(prompt), genConfig)
		if err != nil {
			return err
		}
		if err := s.validateGenerateResponse(result); err != nil {
			return fmt.Errorf("invalid response: %w", err)
		}
		text = result.Text()
		return nil
	})
	s.record(err)
	if err != nil {
		return "", fmt.Errorf("gemini generate questions: %w", err)
	}
	return text, nil
}

func (s *GeminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	trimmedText := strings.TrimSpace(text)
	if trimmedText == "" {
		return nil, fmt.Errorf("text for embedding cannot be empty")
	}

	if len(trimmedText) > 10000 {
		log.Printf("Warning: text length %d exceeds recommended limit, truncating...", len(trimmedText))
		trimmedText = trimmedText[:10000]
	}

	if err := s.checkCircuit(); err != nil {
		return nil, err
	}

	content := []*genai.Content{genai.NewContentFromText(trimmedText, genai.RoleUser)}
	embedConfig := &genai.EmbedContentConfig{
		OutputDimensionality: genai.Ptr(int32(model.EmbeddingDimensions)),
	}

	var embeddings []float32
	err := s.policy.Do(ctx, "gemini.GenerateEmbedding", func(ctx context.Context) error {
		result, err := s.Client.Models.EmbedContent(ctx, s.EmbeddingModel, content, embedConfig)
		if err != nil {
			return err
		}
		embeddings, err = s.validateEmbeddingResponse(result)
		return err
	})
	s.record(err)
	if err != nil {
		return nil, fmt.Errorf("gemini generate embedding: %w", err)
	}
	return embeddings, nil
}

func (s *GeminiService) checkCircuit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.consecutiveErrors >= s.circuitBreakerMax {
		return fmt.Errorf("circuit breaker open: too many consecutive errors (%d)", s.consecutiveErrors)
	}
	return nil
}

func (s *GeminiService) record(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		s.consecutiveErrors = 0
		return
	}
	s.consecutiveErrors++
}

func (s *GeminiService) validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}

	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}

	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}

	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}

	return nil
}

func (s *GeminiService) validateEmbeddingResponse(resp *genai.EmbedContentResponse) ([]float32, error) {
	if resp == nil {
		return nil, fmt.Errorf("response is nil")
	}

	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	embeddings := resp.Embeddings[0].Values

	if len(embeddings) == 0 {
		return nil, fmt.Errorf("embedding vector is empty")
	}

	for i, val := range embeddings {
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return nil, fmt.Errorf("invalid embedding value at index %d: %v", i, val)
		}
	}

	return embeddings, nil
}

func (s *GeminiService) ResetCircuitBreaker() {
	s.mu.Lock()
	s.consecutiveErrors = 0
	s.mu.Unlock()
	log.Println("Circuit breaker reset")
}

func (s *GeminiService) GetCircuitBreakerStatus() (consecutiveErrors int, isOpen bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.consecutiveErrors, s.consecutiveErrors >= s.circuitBreakerMax
}
