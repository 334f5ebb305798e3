package score

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/anatolykoptev/go_ats/internal/engine"
)

// ActivityType identifies what kind of scoring operation happened.
type ActivityType string

const (
	ActivityResumeScan    ActivityType = "resume_scan"
	ActivityATSCheck      ActivityType = "ats_check"
	ActivityInterviewEval ActivityType = "interview_eval"
	ActivityInterviewPrep ActivityType = "interview_prep"
)

// Activity is a single entry in the activity log.
type Activity struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Details   string `json:"details"`
	CreatedAt string `json:"created_at"`
}

// ActivityListInput is the input for activity_log_list.
type ActivityListInput struct {
	Type  string `json:"type,omitempty" jsonschema:"Filter by activity type: resume_scan, ats_check, interview_eval, interview_prep"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max entries to return (default 50, max 100)"`
}

// ActivityListResult is the output for activity_log_list.
type ActivityListResult struct {
	Activities []Activity       `json:"activities"`
	Total      int              `json:"total"`
	Counts     map[string]int64 `json:"counts"`
}

var (
	activityDB   *sql.DB
	activityOnce sync.Once
	activityErr  error
)

// openActivityDB opens (or creates) the SQLite activity log database.
func openActivityDB() (*sql.DB, error) {
	activityOnce.Do(func() {
		dir := engine.Cfg.ActivityDBDir
		if dir == "" {
			dir = filepath.Join(os.Getenv("HOME"), ".go_ats")
		}
		if err := os.MkdirAll(dir, 0750); err != nil {
			activityErr = fmt.Errorf("activity: mkdir %s: %w", dir, err)
			return
		}
		dbPath := filepath.Join(dir, "activity.db")
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			activityErr = fmt.Errorf("activity: open db: %w", err)
			return
		}
		db.SetMaxOpenConns(1) // SQLite: single writer
		if err := initActivitySchema(db); err != nil {
			activityErr = fmt.Errorf("activity: init schema: %w", err)
			return
		}
		activityDB = db
	})
	return activityDB, activityErr
}

// initActivitySchema creates the activities table if it doesn't exist.
func initActivitySchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS activities (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		type       TEXT NOT NULL,
		details    TEXT,
		created_at TEXT NOT NULL
	)`)
	return err
}

// validActivityType checks if a type string is valid.
func validActivityType(s string) bool {
	switch ActivityType(s) {
	case ActivityResumeScan, ActivityATSCheck, ActivityInterviewEval, ActivityInterviewPrep:
		return true
	}
	return false
}

// RecordActivity appends one entry to the activity log.
// Callers treat failures as non-fatal: scoring results are returned
// whether or not the log write succeeds.
func RecordActivity(_ context.Context, typ ActivityType, details string) error {
	db, err := openActivityDB()
	if err != nil {
		engine.IncrActivityWriteErrors()
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := db.Exec(
		`INSERT INTO activities (type, details, created_at) VALUES (?, ?, ?)`,
		string(typ), details, now,
	); err != nil {
		engine.IncrActivityWriteErrors()
		return fmt.Errorf("activity: insert: %w", err)
	}
	engine.IncrActivityWrites()
	return nil
}

// ListActivities returns recent activity entries, newest first,
// optionally filtered by type, with per-type totals.
func ListActivities(_ context.Context, input ActivityListInput) (*ActivityListResult, error) {
	db, err := openActivityDB()
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var rows *sql.Rows
	if input.Type != "" {
		if !validActivityType(input.Type) {
			return nil, fmt.Errorf("activity: invalid type %q (valid: resume_scan, ats_check, interview_eval, interview_prep)", input.Type)
		}
		rows, err = db.Query(
			`SELECT id, type, details, created_at FROM activities
			 WHERE type = ? ORDER BY id DESC LIMIT ?`,
			input.Type, limit,
		)
	} else {
		rows, err = db.Query(
			`SELECT id, type, details, created_at FROM activities
			 ORDER BY id DESC LIMIT ?`,
			limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("activity: query: %w", err)
	}
	defer rows.Close()

	var activities []Activity
	for rows.Next() {
		var a Activity
		var details sql.NullString
		if err := rows.Scan(&a.ID, &a.Type, &details, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("activity: scan: %w", err)
		}
		a.Details = details.String
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("activity: rows: %w", err)
	}

	counts, err := countActivities(db)
	if err != nil {
		return nil, err
	}

	return &ActivityListResult{
		Activities: activities,
		Total:      len(activities),
		Counts:     counts,
	}, nil
}

// countActivities returns totals per activity type.
func countActivities(db *sql.DB) (map[string]int64, error) {
	rows, err := db.Query(`SELECT type, COUNT(*) FROM activities GROUP BY type`)
	if err != nil {
		return nil, fmt.Errorf("activity: count: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var typ string
		var n int64
		if err := rows.Scan(&typ, &n); err != nil {
			return nil, fmt.Errorf("activity: count scan: %w", err)
		}
		counts[typ] = n
	}
	return counts, rows.Err()
}
