package quiz

import "github.com/abhisek/studybuddy/internal/schema"

// Schema describes the JSON form of a composed quiz.
var Schema = &schema.Schema{
	Name:        "quiz",
	Description: "An ordered list of multiple-choice questions",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
				"options": map[string]any{
					"type":        "array",
					"minItems":    2,
					"uniqueItems": true,
					"items":       map[string]any{"type": "string", "minLength": 1},
				},
				"correct": map[string]any{
					"type":    "integer",
					"minimum": 0,
				},
				"explanation": map[string]any{"type": "string"},
				"kind": map[string]any{
					"type": "string",
					"enum": []any{"definition", "concept", "factual", "keyword", "default"},
				},
			},
			"required": []any{"question", "options", "correct", "explanation"},
		},
	},
}

// ValidateJSON checks a serialized quiz against Schema.
func ValidateJSON(raw []byte) error {
	return schema.Validate(Schema, raw)
}
