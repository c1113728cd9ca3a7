// Package audit keeps a local history of license applications and validation
// runs in the shared SQLite database. Recording is best-effort: callers log
// failures and move on rather than failing the primary operation.
package audit

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/skillkit/skillkit/pkg/db"
)

// Event kinds stored in the audit trail.
const (
	EventLicenseApplied = "license_applied"
	EventValidationRun  = "validation_run"
)

// Event is a single recorded audit entry.
type Event struct {
	ID        int64     `db:"id"`
	Kind      string    `db:"kind"`
	SkillName string    `db:"skill_name"`
	SkillPath string    `db:"skill_path"`
	Entity    string    `db:"entity"`
	Tier      string    `db:"tier"`
	Signature string    `db:"signature"`
	Passed    bool      `db:"passed"`
	Failures  int       `db:"failures"`
	CreatedAt time.Time `db:"created_at"`
}

// Store persists audit events.
type Store struct {
	db *sqlx.DB
}

// Migrations returns the schema migrations for the audit trail.
func Migrations() []db.Migration {
	return []db.Migration{
		{
			Version:     20260815093000,
			Description: "Create audit_events table",
			Up: func(tx *sql.Tx) error {
				_, err := tx.Exec(`
					CREATE TABLE IF NOT EXISTS audit_events (
						id INTEGER PRIMARY KEY AUTOINCREMENT,
						kind TEXT NOT NULL,
						skill_name TEXT NOT NULL,
						skill_path TEXT NOT NULL DEFAULT '',
						entity TEXT NOT NULL DEFAULT '',
						tier TEXT NOT NULL DEFAULT '',
						signature TEXT NOT NULL DEFAULT '',
						passed BOOLEAN NOT NULL DEFAULT 0,
						failures INTEGER NOT NULL DEFAULT 0,
						created_at DATETIME NOT NULL
					);
					CREATE INDEX IF NOT EXISTS idx_audit_events_created_at
						ON audit_events(created_at DESC);
					CREATE INDEX IF NOT EXISTS idx_audit_events_skill_name
						ON audit_events(skill_name);
				`)
				return err
			},
			Down: func(tx *sql.Tx) error {
				_, err := tx.Exec(`
					DROP INDEX IF EXISTS idx_audit_events_skill_name;
					DROP INDEX IF EXISTS idx_audit_events_created_at;
					DROP TABLE IF EXISTS audit_events;
				`)
				return err
			},
		},
	}
}

// Open opens the audit store at the default database path, running any
// pending migrations.
func Open(ctx context.Context) (*Store, error) {
	dbPath, err := db.DefaultDBPath()
	if err != nil {
		return nil, err
	}
	return OpenAt(ctx, dbPath)
}

// OpenAt opens the audit store against a specific database file.
func OpenAt(ctx context.Context, dbPath string) (*Store, error) {
	sqlDB, err := db.Open(ctx, dbPath)
	if err != nil {
		return nil, err
	}

	runner := db.NewMigrationRunner(sqlDB)
	if err := runner.Run(ctx, Migrations()); err != nil {
		sqlDB.Close()
		return nil, errors.Wrap(err, "failed to run audit migrations")
	}

	return &Store{db: sqlDB}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordLicenseApplied stores a license application event.
func (s *Store) RecordLicenseApplied(ctx context.Context, skillName, skillPath, entity, tier, signature string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_events (kind, skill_name, skill_path, entity, tier, signature, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		EventLicenseApplied, skillName, skillPath, entity, tier, signature, time.Now().UTC())
	return errors.Wrap(err, "failed to record license application")
}

// RecordValidationRun stores a validation run event.
func (s *Store) RecordValidationRun(ctx context.Context, skillName, skillPath string, passed bool, failures int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_events (kind, skill_name, skill_path, passed, failures, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		EventValidationRun, skillName, skillPath, passed, failures, time.Now().UTC())
	return errors.Wrap(err, "failed to record validation run")
}

// List returns the most recent events, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 20
	}

	var events []Event
	err := s.db.SelectContext(ctx, &events, `
		SELECT id, kind, skill_name, skill_path, entity, tier, signature, passed, failures, created_at
		FROM audit_events
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list audit events")
	}
	return events, nil
}

// ListBySkill returns recent events for a single skill, newest first.
func (s *Store) ListBySkill(ctx context.Context, skillName string, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 20
	}

	var events []Event
	err := s.db.SelectContext(ctx, &events, `
		SELECT id, kind, skill_name, skill_path, entity, tier, signature, passed, failures, created_at
		FROM audit_events
		WHERE skill_name = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, skillName, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list audit events")
	}
	return events, nil
}
