package main

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

var projectionsSports = []string{"nfl", "mlb", "nba"}

// ProjectionsArgs is the input for get_projections.
type ProjectionsArgs struct {
	Sport    string `json:"sport"`
	Season   string `json:"season"`
	Week     int    `json:"week,omitempty"`
	Position string `json:"position,omitempty"`
}

func (a ProjectionsArgs) validate() error {
	if err := requireOneOf("sport", a.Sport, projectionsSports); err != nil {
		return err
	}
	if a.Season == "" {
		return fmt.Errorf("season is required")
	}
	if a.Week < 0 {
		return fmt.Errorf("week must be positive, got %d", a.Week)
	}
	return nil
}

func projectionsSchema() *jsonschema.Schema {
	return objectSchema(map[string]*jsonschema.Schema{
		"sport":    stringProp("Sport to fetch projections for", projectionsSports...),
		"season":   stringProp("Season year, e.g. 2024"),
		"week":     intProp("Week within the season (omit for season totals)", 1, 30),
		"position": stringProp("Position filter"),
	}, "sport", "season")
}
