// Package ai talks to the external text-generation service and turns its
// semi-structured responses into validated domain values.
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"

	"github.com/fread-app/fread-server-go/pkg/errors"
)

// Client sends one prompt with system instructions to the text-generation
// service and returns the raw response text. Implementations hold no
// mutable state between calls and never retry.
type Client interface {
	Complete(ctx context.Context, systemInstructions, userPrompt string, maxOutputTokens int, temperature float32) (string, error)
}

// OpenAIConfig is built once at process init and read-only afterwards.
type OpenAIConfig struct {
	APIKey         string
	Model          string
	RequestTimeout time.Duration
}

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
	timeout   time.Duration
	logger    *zap.Logger
}

func NewOpenAIClient(cfg OpenAIConfig, logger *zap.Logger) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = "gpt-4o-mini"
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	client := openai.NewClient(option.WithAPIKey(cfg.APIKey))

	return &OpenAIClient{
		client:    &client,
		model:     resolveChatModel(modelName),
		modelName: modelName,
		timeout:   timeout,
		logger:    logger,
	}, nil
}

// Complete performs one chat completion with a bounded wait. Any transport,
// auth or quota failure (including the deadline) surfaces as UpstreamError;
// callers branch on it instead of seeing an unhandled fault.
func (c *OpenAIClient) Complete(ctx context.Context, systemInstructions, userPrompt string, maxOutputTokens int, temperature float32) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemInstructions),
			openai.UserMessage(userPrompt),
		},
		MaxCompletionTokens: openai.Int(int64(maxOutputTokens)),
		Temperature:         openai.Float(float64(temperature)),
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		c.logger.Error("OpenAI completion failed",
			zap.String("model", c.modelName),
			zap.Error(err),
		)
		return "", errors.NewUpstreamError("openai", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.NewUpstreamError("openai", fmt.Errorf("no choices in response"))
	}

	text := resp.Choices[0].Message.Content
	c.logger.Debug("OpenAI response received",
		zap.String("model", c.modelName),
		zap.Int("length", len(text)),
		zap.Int64("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int64("completion_tokens", resp.Usage.CompletionTokens),
	)

	return text, nil
}

func resolveChatModel(name string) openai.ChatModel {
	switch name {
	case "gpt-4o-mini":
		return openai.ChatModelGPT4oMini
	case "gpt-4o":
		return openai.ChatModelGPT4o
	case "gpt-4.1":
		return openai.ChatModelGPT4_1
	case "gpt-4.1-mini":
		return openai.ChatModelGPT4_1Mini
	case "gpt-4.1-nano":
		return openai.ChatModelGPT4_1Nano
	case "gpt-4-turbo":
		return openai.ChatModelGPT4Turbo
	default:
		return openai.ChatModelGPT4oMini
	}
}
