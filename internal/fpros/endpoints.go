package fpros

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// DefaultNewsLimit is applied when a news call does not specify one.
const DefaultNewsLimit = 25

// /{sport}/news
func (c *Client) SportNews(ctx context.Context, sport string, limit int, category string) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultNewsLimit
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if category != "" {
		q.Set("category", category)
	}
	return c.Get(ctx, fmt.Sprintf("/%s/news", sport), q)
}

// /{sport}/players
func (c *Client) Players(ctx context.Context, sport string, playerID string) ([]byte, error) {
	q := url.Values{}
	if playerID != "" {
		q.Set("player", playerID)
	}
	return c.Get(ctx, fmt.Sprintf("/%s/players", sport), q)
}

// /{sport}/{year}/consensus-rankings
func (c *Client) Rankings(ctx context.Context, sport string, year int, position string, scoring string) ([]byte, error) {
	if position == "" {
		position = "ALL"
	}
	if scoring == "" {
		scoring = "STD"
	}
	q := url.Values{}
	q.Set("position", position)
	q.Set("scoring", scoring)
	return c.Get(ctx, fmt.Sprintf("/%s/%d/consensus-rankings", sport, year), q)
}

// /{sport}/{season}/projections
func (c *Client) Projections(ctx context.Context, sport string, season string, week int, position string) ([]byte, error) {
	q := url.Values{}
	if week > 0 {
		q.Set("week", strconv.Itoa(week))
	}
	if position != "" {
		q.Set("position", position)
	}
	return c.Get(ctx, fmt.Sprintf("/%s/%s/projections", sport, season), q)
}

// /json/all/news
func (c *Client) AllNews(ctx context.Context, limit int, category string) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultNewsLimit
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if category != "" {
		q.Set("category", category)
	}
	return c.Get(ctx, "/json/all/news", q)
}
