package llm

import (
	"context"
	"encoding/json"
)

// Provider sends one structured-output request to a text-generation service.
type Provider interface {
	// Generate sends req and returns the model's JSON output. When
	// req.Schema is set the output has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request is a single-turn generation request. There is no conversation
// history: every problem is generated from scratch.
type Request struct {
	// System is the system instruction that fixes the model's persona.
	System string

	// Prompt is the user prompt.
	Prompt string

	// Schema constrains the output. When set, the provider asks for
	// application/json output conforming to it and validates the result.
	Schema *Schema

	// MaxTokens caps the response length. Zero leaves the provider default.
	MaxTokens int

	// Temperature controls randomness (0.0 - 1.0). Zero leaves the provider default.
	Temperature float64
}

// Schema is a named JSON Schema.
type Schema struct {
	// Name identifies the schema (OpenAI schema name, validator cache key).
	Name string

	// Description tells the model what the object represents.
	Description string

	// Definition is the JSON Schema document.
	Definition map[string]any
}

// Response holds the model output.
type Response struct {
	// Content is the raw text body. With a Schema it is a validated JSON object.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
