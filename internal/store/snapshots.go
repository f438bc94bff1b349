package store

import (
	"database/sql"
	"time"
)

// CreateSnapshot inserts a snapshot header and returns its ID.
func (db *DB) CreateSnapshot(trackingMode, variant, source, version string) (int64, error) {
	result, err := db.conn.Exec(
		"INSERT INTO snapshots (taken_at, tracking_mode, variant, source, version) VALUES (?, ?, ?, ?, ?)",
		timeKey(time.Now()), trackingMode, variant, source, version,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// InsertInsight inserts one generated insight row for a snapshot.
func (db *DB) InsertInsight(r *InsightRow) error {
	_, err := db.conn.Exec(
		`INSERT INTO insights
		(snapshot_id, position, insight_id, category, title, recommendation,
		 because, micro_step, confidence, action_type, window_hours, metric_key)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.SnapshotID, r.Position, r.InsightID, r.Category, r.Title,
		r.Recommendation, r.Because, r.MicroStep, r.Confidence,
		r.ActionType, r.WindowHours, r.MetricKey,
	)
	return err
}

// ListSnapshots returns the most recent snapshots, newest first.
func (db *DB) ListSnapshots(limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.conn.Query(
		`SELECT id, taken_at, tracking_mode, variant, source, version
		 FROM snapshots ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var snaps []Snapshot
	for rows.Next() {
		var s Snapshot
		var takenAt string
		if err := rows.Scan(&s.ID, &takenAt, &s.TrackingMode, &s.Variant, &s.Source, &s.Version); err != nil {
			return nil, err
		}
		s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		snaps = append(snaps, s)
	}
	return snaps, rows.Err()
}

// GetSnapshot returns a snapshot by ID, or nil if it does not exist.
func (db *DB) GetSnapshot(id int64) (*Snapshot, error) {
	row := db.conn.QueryRow(
		"SELECT id, taken_at, tracking_mode, variant, source, version FROM snapshots WHERE id = ?", id,
	)
	var s Snapshot
	var takenAt string
	err := row.Scan(&s.ID, &takenAt, &s.TrackingMode, &s.Variant, &s.Source, &s.Version)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	return &s, nil
}

// SnapshotInsights returns a snapshot's insights in stored rank order.
func (db *DB) SnapshotInsights(snapshotID int64) ([]InsightRow, error) {
	rows, err := db.conn.Query(
		`SELECT id, snapshot_id, position, insight_id, category, title,
		 recommendation, because, micro_step, confidence, action_type,
		 window_hours, metric_key
		 FROM insights WHERE snapshot_id = ? ORDER BY position`,
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var insights []InsightRow
	for rows.Next() {
		var r InsightRow
		if err := rows.Scan(&r.ID, &r.SnapshotID, &r.Position, &r.InsightID,
			&r.Category, &r.Title, &r.Recommendation, &r.Because, &r.MicroStep,
			&r.Confidence, &r.ActionType, &r.WindowHours, &r.MetricKey); err != nil {
			return nil, err
		}
		insights = append(insights, r)
	}
	return insights, rows.Err()
}
