package gemini

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

type Client struct {
	tracer    trace.Tracer
	apiClient *genai.Client
	model     string
}

func New(ctx context.Context, tracer trace.Tracer, apiKey string, model string) (*Client, error) {
	apiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	if model == "" {
		model = DefaultModel
	}

	return &Client{
		tracer:    tracer,
		apiClient: apiClient,
		model:     model,
	}, nil
}

func (client *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, span := client.tracer.Start(ctx, "GeminiClient.GenerateText", trace.WithAttributes(
		attribute.String("model", client.model),
	))
	defer span.End()

	resp, err := client.apiClient.Models.GenerateContent(ctx, client.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("Models.GenerateContent: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("model returned an empty response")
	}

	return text, nil
}
