package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means a fresh database.
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates the event tables, snapshot tables, and cache.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS meals (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			logged_at     TEXT NOT NULL,
			meal_type     TEXT NOT NULL,
			fibre_grams   REAL NOT NULL DEFAULT 0,
			craving_level INTEGER NOT NULL DEFAULT 0,
			walked_after  BOOLEAN NOT NULL DEFAULT false,
			note          TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS checkins (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			logged_at TEXT NOT NULL,
			fullness  INTEGER NOT NULL DEFAULT 0,
			energy    INTEGER NOT NULL DEFAULT 0,
			note      TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS glucose_readings (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			logged_at        TEXT NOT NULL,
			value            REAL NOT NULL,
			prior_meal_fibre REAL NOT NULL DEFAULT -1
		)`,

		`CREATE TABLE IF NOT EXISTS sleep_logs (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			logged_at TEXT NOT NULL,
			hours     REAL NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS step_counts (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			logged_at TEXT NOT NULL,
			steps     INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS weight_logs (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			logged_at TEXT NOT NULL,
			weight_kg REAL NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS snapshots (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			taken_at      TEXT NOT NULL,
			tracking_mode TEXT NOT NULL,
			variant       TEXT NOT NULL,
			source        TEXT NOT NULL,
			version       TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS insights (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id    INTEGER NOT NULL REFERENCES snapshots(id),
			position       INTEGER NOT NULL,
			insight_id     TEXT NOT NULL,
			category       TEXT NOT NULL,
			title          TEXT NOT NULL,
			recommendation TEXT NOT NULL,
			because        TEXT NOT NULL,
			micro_step     TEXT NOT NULL,
			confidence     TEXT NOT NULL,
			action_type    TEXT NOT NULL,
			window_hours   INTEGER NOT NULL,
			metric_key     TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS insight_cache (
			cache_key  TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			created_at TEXT NOT NULL,
			expires_at TEXT NOT NULL
		)`,

		// Indexes. Event queries are always bounded by logged_at.
		`CREATE INDEX IF NOT EXISTS idx_meals_logged ON meals(logged_at)`,
		`CREATE INDEX IF NOT EXISTS idx_checkins_logged ON checkins(logged_at)`,
		`CREATE INDEX IF NOT EXISTS idx_glucose_logged ON glucose_readings(logged_at)`,
		`CREATE INDEX IF NOT EXISTS idx_sleep_logged ON sleep_logs(logged_at)`,
		`CREATE INDEX IF NOT EXISTS idx_steps_logged ON step_counts(logged_at)`,
		`CREATE INDEX IF NOT EXISTS idx_weight_logged ON weight_logs(logged_at)`,
		`CREATE INDEX IF NOT EXISTS idx_insights_snapshot ON insights(snapshot_id)`,
		`CREATE INDEX IF NOT EXISTS idx_cache_expires ON insight_cache(expires_at)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
