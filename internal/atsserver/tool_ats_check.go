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

func registerATSCheck(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ats_check",
		Description: "Score a resume against a job description the way an ATS would: shared 1-3-word n-gram vocabulary, cosine similarity mapped to a 0-100 score, plus matched and missing keyword lists (longest phrases first). Empty or unusable input returns a zero score with a reason, never an error.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input score.ATSCheckInput) (*mcp.CallToolResult, score.MatchReport, error) {
		engine.IncrATSChecks()

		cacheKey := engine.CacheKey("ats_check", input.JobDescription, input.Resume)
		if out, ok := toolutil.CacheLoadJSON[score.MatchReport](ctx, cacheKey); ok {
			return nil, out, nil
		}

		report := score.Match(input.JobDescription, input.Resume)

		if err := score.RecordActivity(ctx, score.ActivityATSCheck,
			fmt.Sprintf("Score: %d%%", report.Score)); err != nil {
			slog.Warn("ats_check: activity log failed", slog.Any("error", err))
		}

		if db := score.GetArchive(); db != nil {
			if err := db.SaveReport(ctx, input.JobDescription, report); err != nil {
				slog.Warn("ats_check: archive failed", slog.Any("error", err))
			}
		}

		toolutil.CacheStoreJSON(ctx, cacheKey, report)
		return nil, report, nil
	})
}
