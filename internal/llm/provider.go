package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single capability every text-generation backend offers.
// Gateways hold a Provider and never inspect which vendor sits behind it.
type Provider interface {
	// Generate sends one prompt and returns the model output. When
	// req.Schema is set the provider uses its native structured output mode
	// and Content holds JSON already validated against the schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the resolved model identifier.
	ModelID() string
}

// Request describes a single-turn generation call.
type Request struct {
	// System is an optional system instruction.
	System string

	Messages []Message

	// Schema, when set, requests structured JSON output.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the vendor default.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserPrompt builds a request with a single user message.
func UserPrompt(prompt string) Request {
	return Request{Messages: []Message{{Role: RoleUser, Content: prompt}}}
}

// Schema is a named JSON Schema for structured output.
type Schema struct {
	// Name identifies the schema. Used as the OpenAI schema name and as the
	// validation cache key, so it must be unique per definition.
	Name        string
	Description string
	Definition  map[string]any
}

// Response holds the model output.
type Response struct {
	// Content is the validated JSON document for schema requests, or the
	// free text encoded as a JSON string otherwise.
	Content json.RawMessage

	// Text is the raw text the model produced.
	Text string

	Usage Usage
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

// newResponse fills Content and Text from the raw model output. Schema
// responses keep the raw JSON, free text is quoted so Content always holds
// valid JSON.
func newResponse(raw string, structured bool) *Response {
	resp := &Response{Text: raw}
	if structured {
		resp.Content = json.RawMessage(raw)
		return resp
	}
	quoted, _ := json.Marshal(raw)
	resp.Content = quoted
	return resp
}
