package main

import (
	"fmt"
	"testing"
	"time"
)

func TestGetRankingsDefaults(t *testing.T) {
	session, rl := startSession(t, jsonOK(`{"rankings":[]}`))

	res := callTool(t, session, "get_rankings", map[string]any{"sport": "nfl"})
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}

	u := rl.last(t)
	wantPath := fmt.Sprintf("/nfl/%d/consensus-rankings", time.Now().Year())
	if u.Path != wantPath {
		t.Errorf("path=%s want %s", u.Path, wantPath)
	}
	q := u.Query()
	if q.Get("position") != "ALL" {
		t.Errorf("position=%q want ALL", q.Get("position"))
	}
	if q.Get("scoring") != "STD" {
		t.Errorf("scoring=%q want STD", q.Get("scoring"))
	}
}

func TestGetRankingsExplicit(t *testing.T) {
	session, rl := startSession(t, jsonOK(`{"rankings":[]}`))

	res := callTool(t, session, "get_rankings", map[string]any{
		"sport":    "nba",
		"position": "PG",
		"scoring":  "PPR",
	})
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}

	q := rl.last(t).Query()
	if q.Get("position") != "PG" {
		t.Errorf("position=%q want PG", q.Get("position"))
	}
	if q.Get("scoring") != "PPR" {
		t.Errorf("scoring=%q want PPR", q.Get("scoring"))
	}
}

func TestRankingsValidate(t *testing.T) {
	checkValidate(t, RankingsArgs{Sport: "nfl"}.validate(), "")
	checkValidate(t, RankingsArgs{Sport: "nba", Scoring: "HALF"}.validate(), "")
	checkValidate(t, RankingsArgs{}.validate(), "sport is required")
	checkValidate(t, RankingsArgs{Sport: "nhl"}.validate(), "sport must be one of")
	checkValidate(t, RankingsArgs{Sport: "nfl", Scoring: "2QB"}.validate(), "scoring must be one of")
}
