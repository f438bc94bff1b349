package insight

import "sort"

// DefaultActionTypePriority applies to action types missing from the table.
const DefaultActionTypePriority = 50

// actionTypePriority is the base ranking weight per action type. Movement
// and anchoring actions rank ahead of pure logging asks.
var actionTypePriority = map[string]int{
	ActionPostMealWalk: 82,
	ActionDailySteps:   74,
	ActionAddFibre:     70,
	ActionLogCheckin:   66,
	ActionWindDown:     64,
	ActionLogMeal:      60,
	ActionPairFibre:    60,
	ActionLogSleep:     58,
	ActionLogWeight:    52,
	ActionLogGlucose:   40,
}

// categoryPriority biases ranking between categories. Glucose is negative:
// under personalization the gentler framing leads with food and movement.
var categoryPriority = map[Category]int{
	CategoryActivity: 10,
	CategoryMeals:    8,
	CategorySleep:    6,
	CategoryWeight:   0,
	CategoryGlucose:  -10,
}

// confidencePriority rewards candidates backed by more logged data.
var confidencePriority = map[Confidence]int{
	ConfidenceHigh:     7,
	ConfidenceModerate: 3,
	ConfidenceLow:      0,
}

// readinessBonus tunes action types by the user's readiness tier. Low
// readiness favors the smallest asks.
var readinessBonus = map[ReadinessLevel]map[string]int{
	ReadinessLow: {
		ActionLogCheckin:   6,
		ActionPostMealWalk: 4,
		ActionLogMeal:      3,
	},
	ReadinessMedium: {
		ActionPostMealWalk: 4,
		ActionAddFibre:     3,
	},
	ReadinessHigh: {
		ActionAddFibre:   5,
		ActionWindDown:   4,
		ActionDailySteps: 4,
	},
}

// barrierBonus tunes action types by the user's primary COM-B barrier.
var barrierBonus = map[Barrier]map[string]int{
	BarrierCapability: {
		ActionLogMeal:    5,
		ActionLogCheckin: 4,
	},
	BarrierOpportunity: {
		ActionPostMealWalk: 5,
		ActionDailySteps:   4,
	},
	BarrierMotivation: {
		ActionLogCheckin: 6,
		ActionWindDown:   3,
	},
	BarrierUnsure: {},
}

const (
	// behaviorV1GlucosePenalty suppresses clinical-adjacent suggestions
	// under the gentler behavior_v1 framing.
	behaviorV1GlucosePenalty = 18

	// lowReadinessLongHorizonPenalty applies to asks whose window exceeds
	// the default horizon when the user's readiness is low.
	lowReadinessLongHorizonPenalty = 6
)

// Score computes the personalization score for one candidate under the
// given options. Higher wins.
func Score(in Insight, opts Options) int {
	score, ok := actionTypePriority[in.Action.ActionType]
	if !ok {
		score = DefaultActionTypePriority
	}
	score += categoryPriority[in.Category]
	score += confidencePriority[in.Confidence]
	score += readinessBonus[opts.ReadinessLevel][in.Action.ActionType]
	score += barrierBonus[opts.ComBBarrier][in.Action.ActionType]

	if in.Category == CategoryGlucose || in.Action.ActionType == ActionLogGlucose {
		score -= behaviorV1GlucosePenalty
	}
	if opts.ReadinessLevel == ReadinessLow && in.Action.WindowHours > DefaultActionWindowHours {
		score -= lowReadinessLongHorizonPenalty
	}

	return score
}

// Rank sorts candidates by descending score. The sort is stable: candidates
// with equal scores keep their insertion order, which keeps output
// deterministic for identical inputs.
func Rank(candidates []Insight, opts Options) []Insight {
	ranked := make([]Insight, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Score(ranked[i], opts) > Score(ranked[j], opts)
	})
	return ranked
}
