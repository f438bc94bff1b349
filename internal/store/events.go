package store

import (
	"database/sql"
	"fmt"
	"time"
)

// timeKey formats a timestamp the way every logged_at column stores it.
// RFC3339 in UTC sorts lexicographically, so range queries use plain
// string comparison.
func timeKey(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// InsertMeal records a logged meal.
func (db *DB) InsertMeal(m *MealRow) error {
	if m.LoggedAt == "" {
		m.LoggedAt = timeKey(time.Now())
	}
	_, err := db.conn.Exec(
		`INSERT INTO meals (logged_at, meal_type, fibre_grams, craving_level, walked_after, note)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.LoggedAt, m.MealType, m.FibreGrams, m.CravingLevel, m.WalkedAfter, m.Note,
	)
	return err
}

// InsertCheckin records a daily check-in.
func (db *DB) InsertCheckin(c *CheckinRow) error {
	if c.LoggedAt == "" {
		c.LoggedAt = timeKey(time.Now())
	}
	_, err := db.conn.Exec(
		"INSERT INTO checkins (logged_at, fullness, energy, note) VALUES (?, ?, ?, ?)",
		c.LoggedAt, c.Fullness, c.Energy, c.Note,
	)
	return err
}

// InsertGlucose records a glucose reading.
func (db *DB) InsertGlucose(g *GlucoseRow) error {
	if g.LoggedAt == "" {
		g.LoggedAt = timeKey(time.Now())
	}
	_, err := db.conn.Exec(
		"INSERT INTO glucose_readings (logged_at, value, prior_meal_fibre) VALUES (?, ?, ?)",
		g.LoggedAt, g.Value, g.PriorMealFibre,
	)
	return err
}

// InsertSleep records a night of sleep.
func (db *DB) InsertSleep(s *SleepRow) error {
	if s.LoggedAt == "" {
		s.LoggedAt = timeKey(time.Now())
	}
	_, err := db.conn.Exec(
		"INSERT INTO sleep_logs (logged_at, hours) VALUES (?, ?)",
		s.LoggedAt, s.Hours,
	)
	return err
}

// InsertSteps records a day's step count.
func (db *DB) InsertSteps(s *StepsRow) error {
	if s.LoggedAt == "" {
		s.LoggedAt = timeKey(time.Now())
	}
	_, err := db.conn.Exec(
		"INSERT INTO step_counts (logged_at, steps) VALUES (?, ?)",
		s.LoggedAt, s.Steps,
	)
	return err
}

// InsertWeight records a weigh-in.
func (db *DB) InsertWeight(w *WeightRow) error {
	if w.LoggedAt == "" {
		w.LoggedAt = timeKey(time.Now())
	}
	_, err := db.conn.Exec(
		"INSERT INTO weight_logs (logged_at, weight_kg) VALUES (?, ?)",
		w.LoggedAt, w.WeightKg,
	)
	return err
}

// MealsSince returns meals logged at or after the cutoff, oldest first.
func (db *DB) MealsSince(since time.Time) ([]MealRow, error) {
	rows, err := db.conn.Query(
		`SELECT id, logged_at, meal_type, fibre_grams, craving_level, walked_after, note
		 FROM meals WHERE logged_at >= ? ORDER BY logged_at`,
		timeKey(since),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var meals []MealRow
	for rows.Next() {
		var m MealRow
		var note sql.NullString
		if err := rows.Scan(&m.ID, &m.LoggedAt, &m.MealType, &m.FibreGrams, &m.CravingLevel, &m.WalkedAfter, &note); err != nil {
			return nil, err
		}
		m.Note = note.String
		meals = append(meals, m)
	}
	return meals, rows.Err()
}

// CheckinCountSince returns the number of check-ins at or after the cutoff.
func (db *DB) CheckinCountSince(since time.Time) (int, error) {
	var n int
	err := db.conn.QueryRow(
		"SELECT COUNT(*) FROM checkins WHERE logged_at >= ?", timeKey(since),
	).Scan(&n)
	return n, err
}

// GlucoseSince returns readings logged at or after the cutoff, oldest first.
func (db *DB) GlucoseSince(since time.Time) ([]GlucoseRow, error) {
	rows, err := db.conn.Query(
		`SELECT id, logged_at, value, prior_meal_fibre
		 FROM glucose_readings WHERE logged_at >= ? ORDER BY logged_at`,
		timeKey(since),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var readings []GlucoseRow
	for rows.Next() {
		var g GlucoseRow
		if err := rows.Scan(&g.ID, &g.LoggedAt, &g.Value, &g.PriorMealFibre); err != nil {
			return nil, err
		}
		readings = append(readings, g)
	}
	return readings, rows.Err()
}

// SleepSince returns sleep logs at or after the cutoff, oldest first.
func (db *DB) SleepSince(since time.Time) ([]SleepRow, error) {
	rows, err := db.conn.Query(
		"SELECT id, logged_at, hours FROM sleep_logs WHERE logged_at >= ? ORDER BY logged_at",
		timeKey(since),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var logs []SleepRow
	for rows.Next() {
		var s SleepRow
		if err := rows.Scan(&s.ID, &s.LoggedAt, &s.Hours); err != nil {
			return nil, err
		}
		logs = append(logs, s)
	}
	return logs, rows.Err()
}

// StepsSince returns step counts at or after the cutoff, oldest first.
func (db *DB) StepsSince(since time.Time) ([]StepsRow, error) {
	rows, err := db.conn.Query(
		"SELECT id, logged_at, steps FROM step_counts WHERE logged_at >= ? ORDER BY logged_at",
		timeKey(since),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var counts []StepsRow
	for rows.Next() {
		var s StepsRow
		if err := rows.Scan(&s.ID, &s.LoggedAt, &s.Steps); err != nil {
			return nil, err
		}
		counts = append(counts, s)
	}
	return counts, rows.Err()
}

// WeightCountSince returns the number of weigh-ins at or after the cutoff.
func (db *DB) WeightCountSince(since time.Time) (int, error) {
	var n int
	err := db.conn.QueryRow(
		"SELECT COUNT(*) FROM weight_logs WHERE logged_at >= ?", timeKey(since),
	).Scan(&n)
	return n, err
}

// ParseLoggedAt converts a stored logged_at value back to a time.Time.
func ParseLoggedAt(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing logged_at %q: %w", s, err)
	}
	return t, nil
}
