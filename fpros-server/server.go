package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fantasypros-mcp/internal/fpros"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverVersion = "0.1.0"

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// newServer builds the MCP server with all five FantasyPros tools
// registered against the given client. The returned registry backs the
// /tools listing in HTTP mode.
func newServer(name string, client *fpros.Client) (*mcp.Server, []toolInfo) {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    name,
			Version: serverVersion,
		},
		nil,
	)

	registry := make([]toolInfo, 0, 8)

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_sport_news",
		Description: "Latest news stories for a sport (nfl, mlb, nba, nhl)",
		InputSchema: sportNewsSchema(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args SportNewsArgs) (*mcp.CallToolResult, any, error) {
		if err := args.validate(); err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(client.SportNews(ctx, args.Sport, args.Limit, args.Category))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_players",
		Description: "Player list for a sport, optionally narrowed to one player id",
		InputSchema: playersSchema(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args PlayersArgs) (*mcp.CallToolResult, any, error) {
		if err := args.validate(); err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(client.Players(ctx, args.Sport, args.PlayerID))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_rankings",
		Description: "Current-year expert consensus rankings (nfl, nba)",
		InputSchema: rankingsSchema(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args RankingsArgs) (*mcp.CallToolResult, any, error) {
		if err := args.validate(); err != nil {
			return toolError(err), nil, nil
		}
		year := time.Now().Year()
		return toolJSON(client.Rankings(ctx, args.Sport, year, args.Position, args.Scoring))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_projections",
		Description: "Player projections for a season (nfl, mlb, nba), optionally per week and position",
		InputSchema: projectionsSchema(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ProjectionsArgs) (*mcp.CallToolResult, any, error) {
		if err := args.validate(); err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(client.Projections(ctx, args.Sport, args.Season, args.Week, args.Position))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_all_news",
		Description: "Latest news stories across all sports",
		InputSchema: allNewsSchema(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args AllNewsArgs) (*mcp.CallToolResult, any, error) {
		if err := args.validate(); err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(client.AllNews(ctx, args.Limit, args.Category))
	})

	return server, registry
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

func toolJSON(res []byte, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSONBytes(res), nil, nil
}

func toolJSONBytes(res []byte) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(prettyJSON(res))},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}

// prettyJSON re-indents b when it is valid JSON, else returns it as is.
func prettyJSON(b []byte) []byte {
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", "  "); err != nil {
		return b
	}
	return buf.Bytes()
}
