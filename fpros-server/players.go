package main

import "github.com/google/jsonschema-go/jsonschema"

// PlayersArgs is the input for get_players.
type PlayersArgs struct {
	Sport    string `json:"sport"`
	PlayerID string `json:"playerId,omitempty"`
}

func (a PlayersArgs) validate() error {
	return requireOneOf("sport", a.Sport, newsSports)
}

func playersSchema() *jsonschema.Schema {
	return objectSchema(map[string]*jsonschema.Schema{
		"sport":    stringProp("Sport to list players for", newsSports...),
		"playerId": stringProp("Restrict the result to a single player id"),
	}, "sport")
}
