package insight

// Action type keys. Kept as plain strings so the priority tables, CTA
// routes, and deduplication all dispatch off the same value.
const (
	ActionLogMeal      = "log_meal"
	ActionAddFibre     = "add_fibre"
	ActionLogCheckin   = "log_checkin"
	ActionPostMealWalk = "post_meal_walk"
	ActionDailySteps   = "daily_steps"
	ActionLogSleep     = "log_sleep"
	ActionWindDown     = "wind_down"
	ActionLogGlucose   = "log_glucose"
	ActionPairFibre    = "pair_fibre"
	ActionLogWeight    = "log_weight"
)

// DefaultActionWindowHours applies when a builder does not set a horizon.
const DefaultActionWindowHours = 48

// newAction builds an Action with the default completion window.
func newAction(actionType, metricKey string) Action {
	return Action{
		ActionType:  actionType,
		WindowHours: DefaultActionWindowHours,
		MetricKey:   metricKey,
	}
}

// timedAction builds an Action with an explicit completion window.
func timedAction(actionType, metricKey string, windowHours int) Action {
	a := newAction(actionType, metricKey)
	a.WindowHours = windowHours
	return a
}

// categoryGradients maps each category to its card gradient color pair.
var categoryGradients = map[Category][2]string{
	CategoryMeals:    {"#34d399", "#2dd4bf"},
	CategoryActivity: {"#60a5fa", "#38bdf8"},
	CategorySleep:    {"#a78bfa", "#818cf8"},
	CategoryGlucose:  {"#fbbf24", "#f59e0b"},
	CategoryWeight:   {"#f472b6", "#fb7185"},
}

// categoryIcons maps each category to its display icon name.
var categoryIcons = map[Category]string{
	CategoryMeals:    "restaurant",
	CategoryActivity: "walk",
	CategorySleep:    "moon",
	CategoryGlucose:  "pulse",
	CategoryWeight:   "scale",
}

// actionCTAs maps each action type to its navigation affordance.
var actionCTAs = map[string]CTA{
	ActionLogMeal:      {Label: "Log a meal", Route: "/log/meal"},
	ActionAddFibre:     {Label: "See fibre ideas", Route: "/learn/fibre"},
	ActionLogCheckin:   {Label: "Check in now", Route: "/checkin"},
	ActionPostMealWalk: {Label: "Plan a walk", Route: "/log/activity"},
	ActionDailySteps:   {Label: "View steps", Route: "/trends/steps"},
	ActionLogSleep:     {Label: "Log sleep", Route: "/log/sleep"},
	ActionWindDown:     {Label: "Set a wind-down", Route: "/log/sleep"},
	ActionLogGlucose:   {Label: "Log a reading", Route: "/log/glucose"},
	ActionPairFibre:    {Label: "See pairing ideas", Route: "/learn/fibre"},
	ActionLogWeight:    {Label: "Log weight", Route: "/log/weight"},
}

// build assembles an insight, filling in the per-category presentation
// metadata and the CTA for the action type. Every recommender goes through
// here so the lookup tables stay the single source of presentation truth.
func build(id string, cat Category, conf Confidence, a Action, title, recommendation, because, microStep string) Insight {
	return Insight{
		ID:             id,
		Category:       cat,
		Title:          title,
		Recommendation: recommendation,
		Because:        because,
		MicroStep:      microStep,
		Confidence:     conf,
		Action:         a,
		CTA:            actionCTAs[a.ActionType],
		Icon:           categoryIcons[cat],
		Gradient:       categoryGradients[cat],
	}
}
