package service

import (
	"context"
	"fmt"
	"strings"

	"finpulse/internal/engine"
	"finpulse/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// MessageGenerator produces the short personalised message attached to a
// recommendation. Implementations may fail or time out; callers substitute
// the deterministic fallback message and never surface the error.
type MessageGenerator interface {
	GenerateMessage(ctx context.Context, persona engine.Persona, product engine.Product, reason string) (string, error)
}

func buildSystemInstruction() string {
	return `You are a warm, friendly bank assistant. You write short personalised
product recommendations for customers based on their behavioral persona and
spending profile. Be friendly and specific, not robotic. Never promise
returns, never mention internal classification rules, and keep every message
to two lines at most.`
}

type LLMService struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	config *config.GigaChatConfig
	logger *zap.Logger
}

func NewLLMService(cfg *config.GigaChatConfig, logger *zap.Logger) (*LLMService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel("GigaChat")
	model.SystemInstruction = buildSystemInstruction()
	model.Temperature = 0.7

	return &LLMService{
		client: client,
		model:  model,
		config: cfg,
		logger: logger,
	}, nil
}

// GenerateMessage asks the model for a two-line personalised recommendation.
// The call is bounded by the configured timeout.
func (s *LLMService) GenerateMessage(ctx context.Context, persona engine.Persona, product engine.Product, reason string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	prompt := fmt.Sprintf(`Customer type: %s
Recommended product: %s
Why: %s

Write a short 2 line personalised message recommending this product.`,
		persona, product, reason)

	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate message: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}
