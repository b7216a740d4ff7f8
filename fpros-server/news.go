package main

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

var newsSports = []string{"nfl", "mlb", "nba", "nhl"}

var newsCategories = []string{"injury", "recap", "transaction", "rumor", "breaking"}

// maxNewsLimit caps the limit argument for both news tools.
const maxNewsLimit = 25

// SportNewsArgs is the input for get_sport_news.
type SportNewsArgs struct {
	Sport    string `json:"sport"`
	Limit    int    `json:"limit,omitempty"`
	Category string `json:"category,omitempty"`
}

func (a SportNewsArgs) validate() error {
	if err := requireOneOf("sport", a.Sport, newsSports); err != nil {
		return err
	}
	if err := validateNewsLimit(a.Limit); err != nil {
		return err
	}
	return oneOf("category", a.Category, newsCategories)
}

func sportNewsSchema() *jsonschema.Schema {
	return objectSchema(map[string]*jsonschema.Schema{
		"sport":    stringProp("Sport to fetch news for", newsSports...),
		"limit":    intProp("Maximum stories to return (default 25)", 1, maxNewsLimit),
		"category": stringProp("Only return stories in this category", newsCategories...),
	}, "sport")
}

// AllNewsArgs is the input for get_all_news.
type AllNewsArgs struct {
	Limit    int    `json:"limit,omitempty"`
	Category string `json:"category,omitempty"`
}

func (a AllNewsArgs) validate() error {
	if err := validateNewsLimit(a.Limit); err != nil {
		return err
	}
	return oneOf("category", a.Category, newsCategories)
}

func allNewsSchema() *jsonschema.Schema {
	return objectSchema(map[string]*jsonschema.Schema{
		"limit":    intProp("Maximum stories to return (default 25)", 1, maxNewsLimit),
		"category": stringProp("Only return stories in this category", newsCategories...),
	})
}

// validateNewsLimit allows 0 (absent; the client applies the default).
func validateNewsLimit(limit int) error {
	if limit != 0 && (limit < 1 || limit > maxNewsLimit) {
		return fmt.Errorf("limit must be between 1 and %d, got %d", maxNewsLimit, limit)
	}
	return nil
}
