package main

import "github.com/google/jsonschema-go/jsonschema"

var rankingsSports = []string{"nfl", "nba"}

var scoringFormats = []string{"STD", "PPR", "HALF"}

// RankingsArgs is the input for get_rankings. The ranking year is the
// current wall-clock year, not a caller argument.
type RankingsArgs struct {
	Sport    string `json:"sport"`
	Position string `json:"position,omitempty"`
	Scoring  string `json:"scoring,omitempty"`
}

func (a RankingsArgs) validate() error {
	if err := requireOneOf("sport", a.Sport, rankingsSports); err != nil {
		return err
	}
	return oneOf("scoring", a.Scoring, scoringFormats)
}

func rankingsSchema() *jsonschema.Schema {
	return objectSchema(map[string]*jsonschema.Schema{
		"sport":    stringProp("Sport to fetch consensus rankings for", rankingsSports...),
		"position": stringProp("Position filter (default ALL)"),
		"scoring":  stringProp("Scoring format (default STD)", scoringFormats...),
	}, "sport")
}
