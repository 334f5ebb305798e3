package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	ResumeScans         atomic.Int64
	ATSChecks           atomic.Int64
	InterviewEvals      atomic.Int64
	InterviewPreps      atomic.Int64
	ActivityWrites      atomic.Int64
	ActivityWriteErrors atomic.Int64
	ArchiveWrites       atomic.Int64
	ArchiveWriteErrors  atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"resume_scans":          metrics.ResumeScans.Load(),
		"ats_checks":            metrics.ATSChecks.Load(),
		"interview_evals":       metrics.InterviewEvals.Load(),
		"interview_preps":       metrics.InterviewPreps.Load(),
		"activity_writes":       metrics.ActivityWrites.Load(),
		"activity_write_errors": metrics.ActivityWriteErrors.Load(),
		"archive_writes":        metrics.ArchiveWrites.Load(),
		"archive_write_errors":  metrics.ArchiveWriteErrors.Load(),
		"cache_hits":            hits,
		"cache_misses":          misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"resume_scans", "ats_checks", "interview_evals", "interview_preps",
		"activity_writes", "activity_write_errors",
		"archive_writes", "archive_write_errors",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the atsserver tool layer.
func IncrResumeScans()    { metrics.ResumeScans.Add(1) }
func IncrATSChecks()      { metrics.ATSChecks.Add(1) }
func IncrInterviewEvals() { metrics.InterviewEvals.Add(1) }
func IncrInterviewPreps() { metrics.InterviewPreps.Add(1) }

// Incrementors for the score/ storage adapters.
func IncrActivityWrites()      { metrics.ActivityWrites.Add(1) }
func IncrActivityWriteErrors() { metrics.ActivityWriteErrors.Add(1) }
func IncrArchiveWrites()       { metrics.ArchiveWrites.Add(1) }
func IncrArchiveWriteErrors()  { metrics.ArchiveWriteErrors.Add(1) }
