package score

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anatolykoptev/go_ats/internal/engine"
)

// ArchiveDB holds the pgx connection pool for the optional match report
// archive. nil when DATABASE_URL is unset — scoring works without it.
type ArchiveDB struct {
	pool *pgxpool.Pool
}

// Package-level singleton, set from main.go.
var archiveDB *ArchiveDB

// SetArchive sets the package-level archive instance.
func SetArchive(db *ArchiveDB) { archiveDB = db }

// GetArchive returns the package-level archive instance (may be nil).
func GetArchive() *ArchiveDB { return archiveDB }

// ArchivedReport is a stored match report row.
type ArchivedReport struct {
	ID              int64    `json:"id"`
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	JobPreview      string   `json:"job_preview"`
	CreatedAt       string   `json:"created_at"`
}

// ConnectArchive creates a pgx pool and ensures the schema exists.
func ConnectArchive(ctx context.Context, databaseURL string) (*ArchiveDB, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS match_reports (
		id               BIGSERIAL PRIMARY KEY,
		score            INT NOT NULL,
		matched_keywords TEXT[] NOT NULL DEFAULT '{}',
		missing_keywords TEXT[] NOT NULL DEFAULT '{}',
		job_preview      TEXT NOT NULL DEFAULT '',
		created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
	)`); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create match_reports: %w", err)
	}

	slog.Info("report archive connected", slog.String("addr", config.ConnConfig.Host))
	return &ArchiveDB{pool: pool}, nil
}

func (db *ArchiveDB) Close() {
	db.pool.Close()
}

// SaveReport archives a match report. jobPreview is a short excerpt of
// the job description, for later eyeballing of what was scored.
func (db *ArchiveDB) SaveReport(ctx context.Context, jobPreview string, report MatchReport) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO match_reports (score, matched_keywords, missing_keywords, job_preview)
		 VALUES ($1, $2, $3, $4)`,
		report.Score, report.MatchedKeywords, report.MissingKeywords,
		engine.TruncateRunes(strings.TrimSpace(jobPreview), 200, "…"),
	)
	if err != nil {
		engine.IncrArchiveWriteErrors()
		return fmt.Errorf("archive: insert: %w", err)
	}
	engine.IncrArchiveWrites()
	return nil
}

// RecentReports returns the latest archived reports, newest first.
func (db *ArchiveDB) RecentReports(ctx context.Context, limit int) ([]ArchivedReport, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, score, matched_keywords, missing_keywords, job_preview, created_at::text
		 FROM match_reports ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("archive: query: %w", err)
	}
	defer rows.Close()

	var reports []ArchivedReport
	for rows.Next() {
		var r ArchivedReport
		if err := rows.Scan(&r.ID, &r.Score, &r.MatchedKeywords, &r.MissingKeywords, &r.JobPreview, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("archive: scan: %w", err)
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

// AverageScore returns the mean archived score, or 0 when empty.
func (db *ArchiveDB) AverageScore(ctx context.Context) (float64, error) {
	var avg float64
	err := db.pool.QueryRow(ctx,
		`SELECT COALESCE(AVG(score), 0) FROM match_reports`).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("archive: avg: %w", err)
	}
	return avg, nil
}
