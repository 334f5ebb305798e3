// Package atsserver exposes the scoring engine as MCP tools:
// resume_scan, ats_check, interview_evaluate, interview_prep and
// activity_log_list. The tools own transport concerns only — caching,
// activity logging, metrics — and delegate every scoring decision to
// internal/engine/score.
package atsserver

import "github.com/modelcontextprotocol/go-sdk/mcp"

// RegisterTools registers all scoring tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerResumeScan(server)
	registerATSCheck(server)
	registerInterviewEvaluate(server)
	registerInterviewPrep(server)
	registerActivityLogList(server)
}
