package atsserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/score"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerInterviewEvaluate(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "interview_evaluate",
		Description: "Score a mock-interview transcript (ordered question/answer pairs) on a 0-10 scale from answer length, technical keyword usage and communication keywords, with penalties for skipped questions. Returns the score plus concrete pros and cons. Skips (empty answers, '(No Answer)', 'SKIPPED') are penalized but never crash the evaluation.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input score.InterviewEvalInput) (*mcp.CallToolResult, score.InterviewReport, error) {
		engine.IncrInterviewEvals()

		report := score.Transcript(input.Transcript)

		if err := score.RecordActivity(ctx, score.ActivityInterviewEval,
			fmt.Sprintf("Score: %d/10", report.Score)); err != nil {
			slog.Warn("interview_evaluate: activity log failed", slog.Any("error", err))
		}

		return nil, report, nil
	})
}

func registerInterviewPrep(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "interview_prep",
		Description: "Generate up to 10 interview prep questions from resume text. Question selection is keyword-driven (experience, projects, React, Python, Node.js, SQL) and deterministic for the same resume.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input score.InterviewPrepInput) (*mcp.CallToolResult, score.InterviewPrepResult, error) {
		if input.Resume == "" {
			return nil, score.InterviewPrepResult{}, fmt.Errorf("resume is required")
		}
		engine.IncrInterviewPreps()

		questions := score.Questions(input.Resume)

		if err := score.RecordActivity(ctx, score.ActivityInterviewPrep,
			fmt.Sprintf("Questions: %d", len(questions))); err != nil {
			slog.Warn("interview_prep: activity log failed", slog.Any("error", err))
		}

		return nil, score.InterviewPrepResult{Questions: questions}, nil
	})
}
