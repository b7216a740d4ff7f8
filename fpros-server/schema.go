package main

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// objectSchema builds an object schema with the given properties and
// required field names.
func objectSchema(props map[string]*jsonschema.Schema, required ...string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
}

// stringProp builds a string property schema; a non-empty enum list
// constrains the allowed values.
func stringProp(desc string, enum ...string) *jsonschema.Schema {
	s := &jsonschema.Schema{Type: "string", Description: desc}
	for _, v := range enum {
		s.Enum = append(s.Enum, v)
	}
	return s
}

// intProp builds an integer property schema bounded to [min, max].
func intProp(desc string, min, max float64) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "integer",
		Description: desc,
		Minimum:     &min,
		Maximum:     &max,
	}
}

// requireOneOf fails when value is empty or not in allowed.
func requireOneOf(field string, value string, allowed []string) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	return oneOf(field, value, allowed)
}

// oneOf fails when value is not in allowed. Empty values pass; callers
// omit the parameter entirely in that case.
func oneOf(field string, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, v := range allowed {
		if value == v {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %v, got %q", field, allowed, value)
}
