// go_ats — Document Matching & Scoring MCP server.
//
// Exposes resume skill extraction, resume/job-description ATS scoring
// and interview transcript evaluation as MCP tools. Runs as HTTP MCP
// server or stdio transport. Document extraction (PDF/DOCX → text)
// happens upstream; this server scores plain text only.
package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_ats/internal/atsserver"
	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/score"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	initEngine()

	slog.Info("starting go_ats",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_ats",
		Version: version,
	}, nil)

	atsserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 5))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_ats",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 60 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		DatabaseURL:          env.Str("DATABASE_URL", ""),
		RedisURL:             env.Str("REDIS_URL", ""),
		ActivityDBDir:        env.Str("ACTIVITY_DB_DIR", ""),
		MaxPreviewBytes:      env.Int("MAX_PREVIEW_BYTES", 500),
		CacheTTL:             env.Duration("CACHE_TTL", 15*time.Minute),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
	}
	engine.Init(c)
	engine.InitCache(c.RedisURL, c.CacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)

	if c.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		db, err := score.ConnectArchive(ctx, c.DatabaseURL)
		if err != nil {
			slog.Warn("report archive unavailable, continuing without it", slog.Any("error", err))
		} else {
			score.SetArchive(db)
		}
	}
}
