package store

import (
	"database/sql"
	"fmt"
	"time"
)

// CacheKey builds the canonical insight-cache key: user, tracking mode, and
// calendar day. A new day always misses.
func CacheKey(user, trackingMode string, day time.Time) string {
	return fmt.Sprintf("%s|%s|%s", user, trackingMode, day.UTC().Format("2006-01-02"))
}

// GetCache returns the cache entry for key, or nil on a miss. Expired
// entries are treated as misses and deleted lazily.
func (db *DB) GetCache(key string, now time.Time) (*CacheEntry, error) {
	row := db.conn.QueryRow(
		"SELECT cache_key, payload, created_at, expires_at FROM insight_cache WHERE cache_key = ?", key,
	)

	var e CacheEntry
	var createdAt, expiresAt string
	err := row.Scan(&e.Key, &e.Payload, &createdAt, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	e.ExpiresAt, _ = time.Parse(time.RFC3339, expiresAt)

	if !now.Before(e.ExpiresAt) {
		_, _ = db.conn.Exec("DELETE FROM insight_cache WHERE cache_key = ?", key)
		return nil, nil
	}
	return &e, nil
}

// PutCache stores a payload under key with the given time-to-live,
// replacing any previous entry.
func (db *DB) PutCache(key, payload string, now time.Time, ttl time.Duration) error {
	_, err := db.conn.Exec(
		`INSERT INTO insight_cache (cache_key, payload, created_at, expires_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(cache_key) DO UPDATE SET
		   payload = excluded.payload,
		   created_at = excluded.created_at,
		   expires_at = excluded.expires_at`,
		key, payload, timeKey(now), timeKey(now.Add(ttl)),
	)
	return err
}

// DeleteCache removes a single cache entry. Used by --refresh.
func (db *DB) DeleteCache(key string) error {
	_, err := db.conn.Exec("DELETE FROM insight_cache WHERE cache_key = ?", key)
	return err
}

// PruneCache removes every expired entry and reports how many were deleted.
func (db *DB) PruneCache(now time.Time) (int64, error) {
	result, err := db.conn.Exec("DELETE FROM insight_cache WHERE expires_at <= ?", timeKey(now))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
