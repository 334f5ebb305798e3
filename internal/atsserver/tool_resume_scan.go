package atsserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/score"
	"github.com/anatolykoptev/go_ats/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerResumeScan(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_scan",
		Description: "Extract recognized technical skills from plain resume text against a curated dictionary (languages, frameworks, databases, devops/cloud, AI/ML, tools). Matching is whole-token and phrase-aware, with canonical display casing (JavaScript, PostgreSQL, Node.js). Also reports whether the text looks like an actual resume and returns a short preview.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input score.ResumeScanInput) (*mcp.CallToolResult, *score.ScanResult, error) {
		if input.Text == "" {
			return nil, nil, fmt.Errorf("text is required")
		}
		engine.IncrResumeScans()

		cacheKey := engine.CacheKey("resume_scan", input.Text, input.Filename)
		if out, ok := toolutil.CacheLoadJSON[*score.ScanResult](ctx, cacheKey); ok {
			return nil, out, nil
		}

		result := score.Scan(input.Text, input.Filename)

		if err := score.RecordActivity(ctx, score.ActivityResumeScan,
			fmt.Sprintf("Skills: %d", len(result.Skills))); err != nil {
			slog.Warn("resume_scan: activity log failed", slog.Any("error", err))
		}

		toolutil.CacheStoreJSON(ctx, cacheKey, result)
		return nil, result, nil
	})
}
