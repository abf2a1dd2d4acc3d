package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

var ErrReportNotFound = errors.New("report not found")

// ─── Models ──────────────────────────────────────────────────────────────────

type Report struct {
	ID           string    `json:"id"`
	Destination  string    `json:"destination"`
	BudgetLevel  string    `json:"budget_level"`
	Duration     int       `json:"duration"`
	Travelers    int       `json:"travelers"`
	TravelerName string    `json:"traveler_name"`
	SummaryJSON  string    `json:"summary_json"`
	PDFData      []byte    `json:"pdf_data,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReportStore persists generated budget reports.
type ReportStore interface {
	SaveReport(ctx context.Context, r *Report) error
	GetReport(ctx context.Context, id string) (*Report, error)
	Ping(ctx context.Context) error
}

// ─── Postgres ────────────────────────────────────────────────────────────────

type Postgres struct {
	db *sql.DB
}

// OpenPostgres connects, waiting for the server to come up, and migrates.
func OpenPostgres(ctx context.Context, dsn string, log *zap.Logger) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Managed databases may take a moment to accept connections.
	for i := 0; i < 10; i++ {
		if err = db.PingContext(ctx); err == nil {
			break
		}
		log.Info("waiting for database", zap.Int("attempt", i+1), zap.Error(err))
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	p := &Postgres{db: db}
	if err := p.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	log.Info("database connected and migrated")
	return p, nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// ─── Migrations ───────────────────────────────────────────────────────────────

func (p *Postgres) migrate(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS budget_reports (
			id            TEXT PRIMARY KEY,
			destination   TEXT NOT NULL,
			budget_level  TEXT NOT NULL,
			duration      INTEGER NOT NULL,
			travelers     INTEGER NOT NULL,
			traveler_name TEXT,
			summary_json  TEXT,
			pdf_data      BYTEA,
			created_at    TIMESTAMPTZ DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_budget_reports_created_at
			ON budget_reports(created_at DESC)`,
	}

	for _, m := range migrations {
		if _, err := p.db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ─── CRUD ─────────────────────────────────────────────────────────────────────

func (p *Postgres) SaveReport(ctx context.Context, r *Report) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO budget_reports (id, destination, budget_level, duration, travelers, traveler_name, summary_json, pdf_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		r.ID, r.Destination, r.BudgetLevel, r.Duration, r.Travelers, r.TravelerName, r.SummaryJSON, r.PDFData)
	return err
}

func (p *Postgres) GetReport(ctx context.Context, id string) (*Report, error) {
	r := &Report{}
	err := p.db.QueryRowContext(ctx, `
		SELECT id, destination, budget_level, duration, travelers, traveler_name, summary_json, pdf_data, created_at
		FROM budget_reports WHERE id = $1`, id).
		Scan(&r.ID, &r.Destination, &r.BudgetLevel, &r.Duration, &r.Travelers,
			&r.TravelerName, &r.SummaryJSON, &r.PDFData, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}
