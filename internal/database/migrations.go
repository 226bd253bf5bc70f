package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migration is one step in the journal's schema history.
type Migration struct {
	Version int
	Name    string
	file    string
}

// journalMigrations lists every schema step in order. New steps go at
// the end with the next version; versions are never reused or renumbered.
var journalMigrations = []Migration{
	{Version: 1, Name: "create_ledger_events", file: "migrations/001_create_ledger_events.sql"},
}

func (m Migration) load() (string, error) {
	content, err := migrationFiles.ReadFile(m.file)
	if err != nil {
		return "", fmt.Errorf("read migration %d (%s): %w", m.Version, m.Name, err)
	}
	return string(content), nil
}

type Migrator struct {
	db *sql.DB
}

func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{db: db}
}

func (m *Migrator) ensureVersionTable() error {
	_, err := m.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	return err
}

func (m *Migrator) appliedVersions() (map[int]bool, error) {
	rows, err := m.db.Query("SELECT version FROM schema_migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

// RunMigrations applies every pending step, each in its own transaction.
func (m *Migrator) RunMigrations() error {
	if err := m.ensureVersionTable(); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	applied, err := m.appliedVersions()
	if err != nil {
		return fmt.Errorf("load applied migrations: %w", err)
	}

	for _, migration := range journalMigrations {
		if applied[migration.Version] {
			continue
		}

		stmt, err := migration.load()
		if err != nil {
			return err
		}

		tx, err := m.db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", migration.Version, err)
		}
		if _, err := tx.Exec(stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("apply migration %d: %w", migration.Version, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_migrations (version, name) VALUES ($1, $2)", migration.Version, migration.Name); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", migration.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", migration.Version, err)
		}

		logrus.WithFields(logrus.Fields{
			"version": migration.Version,
			"name":    migration.Name,
		}).Info("migration applied")
	}

	return nil
}

// Status logs each known migration and whether it has been applied.
func (m *Migrator) Status() error {
	if err := m.ensureVersionTable(); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	applied, err := m.appliedVersions()
	if err != nil {
		return fmt.Errorf("load applied migrations: %w", err)
	}

	for _, migration := range journalMigrations {
		state := "pending"
		if applied[migration.Version] {
			state = "applied"
		}
		logrus.WithFields(logrus.Fields{
			"version": migration.Version,
			"name":    migration.Name,
			"state":   state,
		}).Info("migration status")
	}
	return nil
}
