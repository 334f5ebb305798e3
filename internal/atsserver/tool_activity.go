package atsserver

import (
	"context"

	"github.com/anatolykoptev/go_ats/internal/engine/score"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerActivityLogList(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "activity_log_list",
		Description: "List recent scoring activity (resume scans, ATS checks, interview evaluations and preps), newest first, with per-type totals. Supports filtering by activity type.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input score.ActivityListInput) (*mcp.CallToolResult, *score.ActivityListResult, error) {
		result, err := score.ListActivities(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		return nil, result, nil
	})
}
