// fantasypros-mcp exposes the FantasyPros public API as MCP tools over
// stdio (default) or streamable HTTP.
package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fantasypros-mcp/internal/config"
	"fantasypros-mcp/internal/fpros"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/phuslu/log"
)

func main() {
	var (
		configFile = flag.String("config", "fantasypros-mcp.toml", "path to TOML config file")
		httpMode   = flag.Bool("http", false, "serve MCP over streamable HTTP instead of stdio")
		mcpPath    = flag.String("path", "/mcp", "HTTP path for MCP endpoint")
		authHeader = flag.String("auth-header", "X-API-Key", "HTTP header to read the server API key from")
	)
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.DefaultLogger.Error().Err(err).Msg("configuration error")
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging.Level)
	client := fpros.NewClient(cfg.API.BaseURL, cfg.API.Key, logger)
	server, registry := newServer(cfg.Server.Name, client)

	if !*httpMode {
		// stdout carries MCP framing; logs go to stderr only.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		logger.Info().Str("transport", "stdio").Msg("MCP server starting")
		if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
			logger.Error().Err(err).Msg("stdio server error")
			os.Exit(1)
		}
		return
	}

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	// Server-side key for HTTP mode; no key means the endpoint is open.
	authKey := strings.TrimSpace(os.Getenv("FPROS_MCP_API_KEY"))

	withAuth := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if authKey == "" {
				next(w, r)
				return
			}
			key := strings.TrimSpace(r.Header.Get(*authHeader))
			if key == "" {
				if authz := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
					key = strings.TrimSpace(authz[7:])
				}
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(authKey)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next(w, r)
		}
	}

	http.HandleFunc("/health", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))

	http.HandleFunc("/tools", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
		w.Write(b)
	}))

	http.HandleFunc(*mcpPath, withAuth(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))

	logger.Info().Str("addr", cfg.Server.HTTPAddr).Str("path", *mcpPath).Msg("MCP HTTP server listening")
	if err := http.ListenAndServe(cfg.Server.HTTPAddr, nil); err != nil {
		logger.Error().Err(err).Msg("http server error")
		os.Exit(1)
	}
}

func newLogger(level string) log.Logger {
	return log.Logger{
		Level:      log.ParseLevel(level),
		TimeFormat: time.RFC3339,
		Writer:     &log.IOWriter{Writer: os.Stderr},
	}
}
