// Package store provides SQLite persistence for logged wellness events,
// generated insight snapshots, and the expiring insight cache.
package store

import "time"

// Meal event types.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// MealRow is one logged meal.
type MealRow struct {
	ID         int64   `json:"id"`
	LoggedAt   string  `json:"logged_at"`
	MealType   string  `json:"meal_type"`
	FibreGrams float64 `json:"fibre_grams"`
	// CravingLevel is a 1-5 self-report; 0 means not recorded.
	CravingLevel int `json:"craving_level,omitempty"`
	// WalkedAfter marks a walk within an hour of finishing the meal.
	WalkedAfter bool   `json:"walked_after"`
	Note        string `json:"note,omitempty"`
}

// CheckinRow is one daily check-in.
type CheckinRow struct {
	ID       int64  `json:"id"`
	LoggedAt string `json:"logged_at"`
	// Fullness and Energy are 1-5 self-reports.
	Fullness int    `json:"fullness,omitempty"`
	Energy   int    `json:"energy,omitempty"`
	Note     string `json:"note,omitempty"`
}

// GlucoseRow is one logged glucose reading.
type GlucoseRow struct {
	ID       int64   `json:"id"`
	LoggedAt string  `json:"logged_at"`
	Value    float64 `json:"value"`
	// PriorMealFibre is the fibre grams of the preceding meal when the
	// reading was taken after eating; negative means no prior meal recorded.
	PriorMealFibre float64 `json:"prior_meal_fibre,omitempty"`
}

// SleepRow is one night of sleep.
type SleepRow struct {
	ID       int64   `json:"id"`
	LoggedAt string  `json:"logged_at"`
	Hours    float64 `json:"hours"`
}

// StepsRow is one day's step count.
type StepsRow struct {
	ID       int64  `json:"id"`
	LoggedAt string `json:"logged_at"`
	Steps    int    `json:"steps"`
}

// WeightRow is one weigh-in.
type WeightRow struct {
	ID       int64   `json:"id"`
	LoggedAt string  `json:"logged_at"`
	WeightKg float64 `json:"weight_kg"`
}

// Snapshot records one insight generation run.
type Snapshot struct {
	ID           int64     `json:"id"`
	TakenAt      time.Time `json:"taken_at"`
	TrackingMode string    `json:"tracking_mode"`
	Variant      string    `json:"variant"`
	Source       string    `json:"source"` // "local" or "remote"
	Version      string    `json:"version"`
}

// InsightRow is one generated insight within a snapshot, stored in rank
// order via Position.
type InsightRow struct {
	ID             int64  `json:"id"`
	SnapshotID     int64  `json:"snapshot_id"`
	Position       int    `json:"position"`
	InsightID      string `json:"insight_id"`
	Category       string `json:"category"`
	Title          string `json:"title"`
	Recommendation string `json:"recommendation"`
	Because        string `json:"because"`
	MicroStep      string `json:"micro_step"`
	Confidence     string `json:"confidence"`
	ActionType     string `json:"action_type"`
	WindowHours    int    `json:"window_hours"`
	MetricKey      string `json:"metric_key"`
}

// CacheEntry is one cached insight list, keyed on user, tracking mode, and
// calendar day. Payload is the JSON-encoded insight list.
type CacheEntry struct {
	Key       string    `json:"key"`
	Payload   string    `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
