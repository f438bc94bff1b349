package insight

// glucoseEligible applies the tracking-mode gate, and under behavior_v1 the
// stricter conjunctive gate layered on top: an explicit opt-in AND at least
// five logged readings.
func glucoseEligible(mode TrackingMode, opts Options, sig Signals) bool {
	switch mode {
	case ModeManualGlucoseOptional, ModeGlucoseTracking:
	default:
		return false
	}
	if opts.ExperienceVariant == VariantBehaviorV1 {
		return opts.ShowGlucoseAdvanced && sig.GlucoseLogsCount >= GlucoseLogsHigh
	}
	return true
}

// Generate runs the full pipeline: every category recommender, the safety
// filter, then either the personalization ranker plus diversity capper
// (behavior_v1) or the legacy flat truncation. It is total over its input:
// an all-zero Signals produces a valid, possibly short, list and the
// function never fails.
func Generate(sig Signals, mode TrackingMode, opts Options) []Insight {
	var candidates []Insight
	candidates = append(candidates, MealInsights(sig)...)
	candidates = append(candidates, ActivityInsights(sig)...)
	candidates = append(candidates, SleepInsights(sig)...)
	if glucoseEligible(mode, opts, sig) {
		candidates = append(candidates, GlucoseInsights(sig)...)
	}
	candidates = append(candidates, WeightInsights(sig)...)

	// The safety filter is unconditional: nothing reaches ranking, capping,
	// or the caller without passing it.
	candidates = FilterUnsafe(candidates)

	if opts.ExperienceVariant == VariantBehaviorV1 {
		ranked := Rank(candidates, opts)
		return CapDiversity(ranked, opts.ReadinessLevel)
	}

	// Legacy ordering: concatenation order, flat truncation.
	if len(candidates) > LegacyLimit {
		candidates = candidates[:LegacyLimit]
	}
	return candidates
}
