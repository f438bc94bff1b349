package insight

import "fmt"

// Behavior thresholds used by the recommenders. The order of the guard
// clauses below is part of the contract: low-data branches return early and
// suppress everything else in their category.
const (
	// DinnerWalkRateTarget is the walk-after-dinner rate below which the
	// post-dinner movement nudge fires.
	DinnerWalkRateTarget = 0.5

	// StepsDailyTarget splits the steps copy into building vs. sustaining.
	StepsDailyTarget = 5000

	// SleepShortNightHours splits sleep copy into wind-down vs. solid rest.
	SleepShortNightHours = 6.5

	// TimeInZoneTarget splits glucose copy into nudging vs. steady.
	TimeInZoneTarget = 70.0
)

// MealInsights produces the meal-category candidates. Fewer than three
// logged meals yields only the setup candidate; all other meal insights are
// suppressed until there is enough to anchor on.
func MealInsights(sig Signals) []Insight {
	if sig.TotalMealsThisWeek < MealCountModerate {
		return []Insight{build(
			"meals-setup",
			CategoryMeals,
			ConfidenceLow,
			newAction(ActionLogMeal, "total_meals_this_week"),
			"Start with your plate",
			"Log a few meals this week so your insights can build on what you actually eat.",
			fmt.Sprintf("You logged %d meals this week, which isn't enough yet to spot your own patterns.", sig.TotalMealsThisWeek),
			"Snap or note your next meal right after you finish it.",
		)}
	}

	var out []Insight

	if sig.AvgFibrePerDay > 0 {
		in := build(
			"meals-fibre-anchor",
			CategoryMeals,
			mealConfidence(sig.TotalMealsThisWeek),
			timedAction(ActionAddFibre, "avg_fibre_per_day", 72),
			"Anchor one meal on fibre",
			"Pick one meal a day and build it around a fibre-rich food you already enjoy.",
			fmt.Sprintf("You averaged %.0fg of fibre a day across %d logged meals this week.", sig.AvgFibrePerDay, sig.TotalMealsThisWeek),
			"Add a handful of beans, lentils, or greens to tomorrow's lunch.",
		)
		if sig.LunchCravingsHigher {
			in.TimeContext = "midday"
			in.MicroStep = "Your cravings run higher around lunch, so start there: add a fibre-rich side to tomorrow's lunch."
		}
		out = append(out, in)
	}

	if sig.CheckinsThisWeek >= CheckinModerate {
		out = append(out, build(
			"meals-checkin-streak",
			CategoryMeals,
			checkinConfidence(sig.CheckinsThisWeek),
			timedAction(ActionLogCheckin, "checkins_this_week", 24),
			"Keep the check-in streak",
			"Your check-ins are what connect how you eat to how you feel. Keep the rhythm going.",
			fmt.Sprintf("You checked in %d times this week.", sig.CheckinsThisWeek),
			"Do tomorrow's check-in right after breakfast, while it's fresh.",
		))
	} else {
		out = append(out, build(
			"meals-checkin-setup",
			CategoryMeals,
			ConfidenceLow,
			timedAction(ActionLogCheckin, "checkins_this_week", 24),
			"Try a daily check-in",
			"A 30-second check-in after a meal tells you far more than the meal log alone.",
			"You haven't checked in yet this week.",
			"After your next meal, note how full and how energetic you feel.",
		))
	}

	return out
}

// ActivityInsights produces the activity-category candidates. The dinner
// branch and the steps branch are independent; within the dinner branch the
// nudge and the praise are mutually exclusive.
func ActivityInsights(sig Signals) []Insight {
	var out []Insight

	if sig.TotalDinners > 0 {
		walkRate := float64(sig.DinnersWithWalk) / float64(sig.TotalDinners)
		if walkRate < DinnerWalkRateTarget {
			out = append(out, build(
				"activity-dinner-walk",
				CategoryActivity,
				mealConfidence(sig.TotalMealsThisWeek),
				timedAction(ActionPostMealWalk, "dinner_walk_rate", 24),
				"Move a little after dinner",
				"A 10-minute walk after dinner is one of the easiest habits to keep.",
				fmt.Sprintf("You walked after %d of your %d logged dinners this week.", sig.DinnersWithWalk, sig.TotalDinners),
				"After tonight's dinner, step outside for ten minutes before sitting down.",
			))
		} else {
			out = append(out, build(
				"activity-dinner-walk-habit",
				CategoryActivity,
				mealConfidence(sig.TotalMealsThisWeek),
				timedAction(ActionPostMealWalk, "dinner_walk_rate", 24),
				"Your dinner walks are sticking",
				"Walking after dinner is already part of your week. Protect it.",
				fmt.Sprintf("You walked after %d of your %d logged dinners this week, more than half.", sig.DinnersWithWalk, sig.TotalDinners),
				"Keep tonight's walk even if it's short; consistency beats distance.",
			))
		}
	}

	if sig.AvgSteps > 0 {
		in := build(
			"activity-steps",
			CategoryActivity,
			ConfidenceModerate,
			newAction(ActionDailySteps, "avg_steps"),
			"Build on your steps",
			"Add one short walk to an existing routine, like right after a meal or a call.",
			fmt.Sprintf("You averaged %.0f steps a day this week.", sig.AvgSteps),
			"Take a 10-minute walk at the same time tomorrow as you did today.",
		)
		if sig.AvgSteps >= StepsDailyTarget {
			in.Title = "Keep your steps rolling"
			in.Recommendation = "Your step count is in a good rhythm. Hold the routine that's getting you there."
			in.MicroStep = "Notice which part of your day brings the most steps, and keep that slot sacred."
		}
		out = append(out, in)
	}

	return out
}

// SleepInsights produces the sleep-category candidates. Fewer than three
// logged days yields only the setup candidate.
func SleepInsights(sig Signals) []Insight {
	if sig.SleepDaysLogged < SleepDaysHigh {
		return []Insight{build(
			"sleep-setup",
			CategorySleep,
			sleepConfidence(sig.SleepDaysLogged),
			newAction(ActionLogSleep, "sleep_days_logged"),
			"Start tracking your nights",
			"Log your sleep for a few nights so your patterns can show up.",
			fmt.Sprintf("You logged sleep on %d days this week.", sig.SleepDaysLogged),
			"Before breakfast tomorrow, note roughly when you fell asleep and woke up.",
		)}
	}

	if sig.AvgSleepHours <= 0 {
		return nil
	}

	if sig.AvgSleepHours < SleepShortNightHours {
		return []Insight{build(
			"sleep-winddown",
			CategorySleep,
			sleepConfidence(sig.SleepDaysLogged),
			timedAction(ActionWindDown, "avg_sleep_hours", 24),
			"Try an earlier wind-down",
			"Moving your wind-down 30 minutes earlier is the gentlest way to add sleep.",
			fmt.Sprintf("You averaged %.1f hours of sleep across %d logged nights this week.", sig.AvgSleepHours, sig.SleepDaysLogged),
			"Tonight, dim the screens half an hour before your usual bedtime.",
		)}
	}

	return []Insight{build(
		"sleep-solid",
		CategorySleep,
		sleepConfidence(sig.SleepDaysLogged),
		timedAction(ActionWindDown, "avg_sleep_hours", 24),
		"Your rest looks solid",
		"Your sleep is doing its job. Keep the bedtime routine that's working.",
		fmt.Sprintf("You averaged %.1f hours of sleep across %d logged nights this week.", sig.AvgSleepHours, sig.SleepDaysLogged),
		"Keep tonight's bedtime within half an hour of your weekly average.",
	)}
}

// GlucoseInsights produces the glucose-category candidates. Callers must
// apply the tracking-mode eligibility gate first; this function assumes the
// category is active. Fewer than five readings yields only the setup
// candidate.
func GlucoseInsights(sig Signals) []Insight {
	if sig.GlucoseLogsCount < GlucoseLogsHigh {
		return []Insight{build(
			"glucose-setup",
			CategoryGlucose,
			glucoseConfidence(sig.GlucoseLogsCount),
			newAction(ActionLogGlucose, "glucose_logs_count"),
			"A few more readings",
			"A handful of readings around meals is enough to start seeing your own rhythm.",
			fmt.Sprintf("You logged %d readings this week.", sig.GlucoseLogsCount),
			"Log one reading before and one after the same meal tomorrow.",
		)}
	}

	if sig.LowFibreMealsAboveZone {
		return []Insight{build(
			"glucose-fibre-pairing",
			CategoryGlucose,
			glucoseConfidence(sig.GlucoseLogsCount),
			timedAction(ActionPairFibre, "time_in_zone_percent", 72),
			"Pair lighter meals with fibre",
			"Adding fibre to your lighter meals tends to keep your readings steadier afterwards.",
			"Your readings ran above your target zone after low-fibre meals this week.",
			"Next time you have a light meal, add a fibre-rich side and compare the after-meal reading.",
		)}
	}

	in := build(
		"glucose-zone",
		CategoryGlucose,
		glucoseConfidence(sig.GlucoseLogsCount),
		timedAction(ActionPostMealWalk, "time_in_zone_percent", 24),
		"Nudge your time in zone",
		"Short movement after your biggest meal is the steadiest way to lift time in zone.",
		fmt.Sprintf("Your readings were in your target zone %.0f%% of the time this week.", sig.TimeInZonePercent),
		"After your biggest meal tomorrow, take a 10-minute walk and compare the reading.",
	)
	if sig.TimeInZonePercent >= TimeInZoneTarget {
		in.Title = "Your zone time looks steady"
		in.Recommendation = "Most of your readings are landing in your target zone. Keep the meal and movement rhythm you have."
		in.MicroStep = "Keep one after-meal walk in place this week; it's doing quiet work."
	}
	return []Insight{in}
}

// WeightInsights produces the weight-category candidates. Three or more
// logs means the habit is established and the category stays silent.
func WeightInsights(sig Signals) []Insight {
	switch {
	case sig.WeightLogsCount <= 0:
		return []Insight{build(
			"weight-setup",
			CategoryWeight,
			ConfidenceLow,
			timedAction(ActionLogWeight, "weight_logs_count", 72),
			"A first weigh-in",
			"One weigh-in a week is plenty. Same scale, same time of day.",
			"You haven't logged a weight yet this week.",
			"Tomorrow morning, before breakfast, step on the scale once.",
		)}
	case sig.WeightLogsCount < WeightLogsEstablished:
		return []Insight{build(
			"weight-cadence",
			CategoryWeight,
			ConfidenceModerate,
			timedAction(ActionLogWeight, "weight_logs_count", 72),
			"Find your weigh-in rhythm",
			"A couple more weigh-ins at the same time of day will make your trend readable.",
			fmt.Sprintf("You logged your weight %d time(s) this week.", sig.WeightLogsCount),
			"Pick two fixed mornings a week and weigh in right after waking.",
		)}
	default:
		// Habit established; silence is the terminal state here.
		return nil
	}
}
