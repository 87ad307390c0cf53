package studyplan

import "github.com/abhisek/studybuddy/internal/schema"

var sessionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"time":       map[string]any{"type": "string", "pattern": `^\d{2}:\d{2}-\d{2}:\d{2}$`},
		"topic":      map[string]any{"type": "string", "minLength": 1},
		"activities": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"source":     map[string]any{"type": "string"},
	},
	"required": []any{"time", "topic", "activities"},
}

// Schema describes the JSON form of a Plan.
var Schema = &schema.Schema{
	Name:        "study-plan",
	Description: "A day-by-day study schedule",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":              map[string]any{"type": "string", "minLength": 1},
			"total_duration":     map[string]any{"type": "string"},
			"documents_included": map[string]any{"type": "integer", "minimum": 0},
			"total_topics":       map[string]any{"type": "integer", "minimum": 0},
			"hours_per_day":      map[string]any{"type": "integer", "minimum": 1},
			"schedule": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"day":          map[string]any{"type": "integer", "minimum": 1},
						"date":         map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
						"day_title":    map[string]any{"type": "string"},
						"sessions":     map[string]any{"type": "array", "items": sessionSchema},
						"topics_count": map[string]any{"type": "integer", "minimum": 0},
					},
					"required": []any{"day", "date", "day_title", "sessions", "topics_count"},
				},
			},
		},
		"required": []any{"title", "total_duration", "total_topics", "schedule"},
	},
}

// ValidateJSON checks a serialized plan against Schema.
func ValidateJSON(raw []byte) error {
	return schema.Validate(Schema, raw)
}
