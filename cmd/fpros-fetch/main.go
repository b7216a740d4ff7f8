// fpros-fetch is a development CLI for poking the FantasyPros API with
// the same client the MCP server uses. Prints the raw JSON body.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"fantasypros-mcp/internal/config"
	"fantasypros-mcp/internal/fpros"

	"github.com/phuslu/log"
)

func main() {
	var (
		configFile = flag.String("config", "fantasypros-mcp.toml", "path to TOML config file")
		endpoint   = flag.String("endpoint", "news", "endpoint to call: news|players|rankings|projections|all-news")
		sport      = flag.String("sport", "nfl", "sport slug (nfl, mlb, nba, nhl)")
		limit      = flag.Int("limit", 0, "news limit (0 = default 25)")
		category   = flag.String("category", "", "news category filter")
		player     = flag.String("player", "", "player id for the players endpoint")
		season     = flag.String("season", "", "season for projections (default current year)")
		week       = flag.Int("week", 0, "week for projections (0 = omit)")
		position   = flag.String("position", "", "position filter")
		scoring    = flag.String("scoring", "", "scoring format for rankings (STD, PPR, HALF)")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.DefaultLogger.Error().Err(err).Msg("configuration error")
		os.Exit(1)
	}

	level := "info"
	if *verbose {
		level = "debug"
	}
	logger := log.Logger{
		Level:      log.ParseLevel(level),
		TimeFormat: time.RFC3339,
		Writer:     &log.IOWriter{Writer: os.Stderr},
	}
	client := fpros.NewClient(cfg.API.BaseURL, cfg.API.Key, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var body []byte
	switch *endpoint {
	case "news":
		body, err = client.SportNews(ctx, *sport, *limit, *category)
	case "players":
		body, err = client.Players(ctx, *sport, *player)
	case "rankings":
		body, err = client.Rankings(ctx, *sport, time.Now().Year(), *position, *scoring)
	case "projections":
		s := *season
		if s == "" {
			s = strconv.Itoa(time.Now().Year())
		}
		body, err = client.Projections(ctx, *sport, s, *week, *position)
	case "all-news":
		body, err = client.AllNews(ctx, *limit, *category)
	default:
		err = fmt.Errorf("unknown endpoint %q", *endpoint)
	}
	if err != nil {
		logger.Error().Err(err).Str("endpoint", *endpoint).Msg("fetch failed")
		os.Exit(1)
	}

	os.Stdout.Write(body)
	fmt.Println()
}
