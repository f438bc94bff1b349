// Package insight generates ranked, personalized wellness insights from a
// week of aggregated behavioral signals. The engine is pure: no I/O, no
// shared state, and a valid (possibly empty) result for any input.
package insight

// Category identifies which wellness area an insight belongs to.
type Category string

const (
	CategoryMeals    Category = "meals"
	CategoryActivity Category = "activity"
	CategorySleep    Category = "sleep"
	CategoryGlucose  Category = "glucose"
	CategoryWeight   Category = "weight"
)

// Confidence is derived solely from data volume, never from effect strength.
type Confidence string

const (
	ConfidenceLow      Confidence = "low"
	ConfidenceModerate Confidence = "moderate"
	ConfidenceHigh     Confidence = "high"
)

// TrackingMode selects which data categories are active for a user.
type TrackingMode string

const (
	ModeMealsOnly TrackingMode = "meals_only"

	// ModeManualGlucoseOptional is retained for users configured before
	// glucose tracking became a first-class mode. Not offered to new setups.
	ModeManualGlucoseOptional TrackingMode = "manual_glucose_optional"

	ModeGlucoseTracking TrackingMode = "glucose_tracking"
)

// ExperienceVariant selects the ranking/capping policy.
type ExperienceVariant string

const (
	VariantLegacy     ExperienceVariant = "legacy"
	VariantBehaviorV1 ExperienceVariant = "behavior_v1"
)

// ReadinessLevel is the user-reported behavioral readiness tier.
type ReadinessLevel string

const (
	ReadinessLow    ReadinessLevel = "low"
	ReadinessMedium ReadinessLevel = "medium"
	ReadinessHigh   ReadinessLevel = "high"
)

// Barrier is the COM-B classification of the user's primary adoption barrier.
type Barrier string

const (
	BarrierCapability  Barrier = "capability"
	BarrierOpportunity Barrier = "opportunity"
	BarrierMotivation  Barrier = "motivation"
	BarrierUnsure      Barrier = "unsure"
)

// Signals is one week of aggregated behavioral metrics. Every field is
// optional: the zero value means "unknown", never an error. Low volume
// degrades confidence; it never makes the engine fail.
type Signals struct {
	// Meals.
	AvgFibrePerDay      float64 `json:"avg_fibre_per_day"`
	TotalMealsThisWeek  int     `json:"total_meals_this_week"`
	CheckinsThisWeek    int     `json:"checkins_this_week"`
	LunchCravingsHigher bool    `json:"lunch_cravings_higher"`

	// Activity.
	AvgSteps        float64 `json:"avg_steps"`
	TotalDinners    int     `json:"total_dinners"`
	DinnersWithWalk int     `json:"dinners_with_walk"`

	// Sleep.
	AvgSleepHours   float64 `json:"avg_sleep_hours"`
	SleepDaysLogged int     `json:"sleep_days_logged"`

	// Glucose.
	GlucoseLogsCount       int     `json:"glucose_logs_count"`
	TimeInZonePercent      float64 `json:"time_in_zone_percent"`
	LowFibreMealsAboveZone bool    `json:"low_fibre_meals_above_zone"`

	// Weight.
	WeightLogsCount int `json:"weight_logs_count"`
}

// Action describes the behavior an insight asks for. It is owned by its
// parent insight and used only for ranking and later outcome evaluation.
type Action struct {
	// ActionType keys into the ranking priority tables.
	ActionType string `json:"action_type"`

	// WindowHours is the horizon in which the action should be completed.
	WindowHours int `json:"window_hours"`

	// MetricKey names the signal this action is expected to move.
	MetricKey string `json:"metric_key"`
}

// CTA is a navigation affordance attached to an insight. Opaque to the engine.
type CTA struct {
	Label string `json:"label"`
	Route string `json:"route"`
}

// Insight is one candidate recommendation. Candidates are immutable once
// constructed; ranking and capping only reorder and select.
type Insight struct {
	// ID is stable and deterministic given the same inputs, unique within
	// one invocation. Clients use it for deduplication.
	ID string `json:"id"`

	Category Category `json:"category"`

	Title          string `json:"title"`
	Recommendation string `json:"recommendation"`

	// Because must reference the user's own aggregated data, never a
	// population norm.
	Because string `json:"because"`

	MicroStep  string     `json:"micro_step"`
	Confidence Confidence `json:"confidence"`
	Action     Action     `json:"action"`
	CTA        CTA        `json:"cta"`

	// Presentation metadata, carried through unchanged.
	Icon        string    `json:"icon,omitempty"`
	Gradient    [2]string `json:"gradient,omitempty"`
	TimeContext string    `json:"time_context,omitempty"`
	OutcomeText string    `json:"outcome_text,omitempty"`
}

// Options tunes personalization. The zero value selects the legacy path.
type Options struct {
	ExperienceVariant   ExperienceVariant `json:"experience_variant"`
	ReadinessLevel      ReadinessLevel    `json:"readiness_level"`
	ComBBarrier         Barrier           `json:"comb_barrier"`
	ShowGlucoseAdvanced bool              `json:"show_glucose_advanced"`
}
