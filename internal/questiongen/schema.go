package questiongen

import "github.com/memoriaviva/memoria/internal/llm"

// BatchSchema is the structured output contract. The array sits under an
// object key because strict modes of some vendors reject a bare array
// root. Array and number bounds are enforced by the validators rather than
// the schema, which keeps the schema inside every vendor's supported
// subset.
var BatchSchema = &llm.Schema{
	Name:        "quiz-question-batch",
	Description: "A batch of multiple-choice questions about the Chilean military dictatorship",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type": "string",
						},
						"text": map[string]any{
							"type": "string",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 options",
						},
						"correctAnswer": map[string]any{
							"type":        "integer",
							"description": "Index 0-3",
						},
						"explanation": map[string]any{
							"type": "string",
						},
					},
					"required":             []any{"id", "text", "options", "correctAnswer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
