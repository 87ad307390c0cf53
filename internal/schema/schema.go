// Package schema validates JSON payloads emitted by the CLI and stored in
// the event log against JSON-Schema definitions.
package schema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON-Schema definition.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// InvalidError reports a payload that failed to parse or validate.
type InvalidError struct {
	Schema  string
	Content []byte
	Err     error
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("schema %q: %v", e.Schema, e.Err)
}

func (e *InvalidError) Unwrap() error {
	return e.Err
}

// compiled caches compiled schemas by name.
var compiled sync.Map // map[string]*jsonschema.Schema

// Validate checks raw JSON against s. A nil schema accepts anything.
func Validate(s *Schema, raw []byte) error {
	if s == nil {
		return nil
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &InvalidError{Schema: s.Name, Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	sch, err := compile(s)
	if err != nil {
		return &InvalidError{Schema: s.Name, Content: raw, Err: fmt.Errorf("compile schema: %w", err)}
	}

	if err := sch.Validate(parsed); err != nil {
		return &InvalidError{Schema: s.Name, Content: raw, Err: fmt.Errorf("validation failed: %w", err)}
	}
	return nil
}

// ValidateValue marshals v and validates the result.
func ValidateValue(s *Schema, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", s.Name, err)
	}
	return Validate(s, raw)
}

func compile(s *Schema) (*jsonschema.Schema, error) {
	if cached, ok := compiled.Load(s.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a decoded JSON value, not Go maps with typed
	// slices, so round-trip the definition.
	defBytes, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", s.Name)
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	compiled.Store(s.Name, sch)
	return sch, nil
}
