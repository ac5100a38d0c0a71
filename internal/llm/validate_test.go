package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-review",
		Description: "A test review object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"score":     map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
				"strengths": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"level":     map[string]any{"type": "string", "enum": []any{"N5", "N4", "N3", "N2", "N1"}},
			},
			"required": []any{"score", "strengths"},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	raw := json.RawMessage(`{"score":85,"strengths":["particles"],"level":"N4"}`)
	if err := Validate(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"score":60,"strengths":[]}`)
	if err := Validate(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"score":85}`)
	err := Validate(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidate_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"score":"eighty-five","strengths":[]}`)
	err := Validate(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidate_OutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"score":140,"strengths":[]}`)
	if err := Validate(testSchema(), raw); err == nil {
		t.Fatal("expected error for score above maximum")
	}
}

func TestValidate_InvalidJSON(t *testing.T) {
	raw := json.RawMessage(`{"score":`)
	err := Validate(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidate_NilSchemaAllowsAnything(t *testing.T) {
	if err := Validate(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema must not validate: %v", err)
	}
}
