package insight

// Volume thresholds per category. Confidence comes from how much data the
// user logged, never from the strength of an effect, and is monotonic:
// more observations never lower the tier.
const (
	// MealCountModerate and MealCountHigh bound the meal-count tiers:
	// 0-2 low, 3-6 moderate, 7+ high.
	MealCountModerate = 3
	MealCountHigh     = 7

	// CheckinModerate and CheckinHigh bound the check-in tiers:
	// 0 low, 1-2 moderate, 3+ high.
	CheckinModerate = 1
	CheckinHigh     = 3

	// SleepDaysModerate and SleepDaysHigh bound the sleep-days tiers:
	// 0 low, 1-2 moderate, 3+ high.
	SleepDaysModerate = 1
	SleepDaysHigh     = 3

	// GlucoseLogsModerate and GlucoseLogsHigh bound the glucose-log tiers:
	// 0-1 low, 2-4 moderate, 5+ high. Note the higher bar than other
	// categories; sparse readings say very little about a week.
	GlucoseLogsModerate = 2
	GlucoseLogsHigh     = 5

	// WeightLogsEstablished is the log count at which the weight habit is
	// considered established and the category goes silent.
	WeightLogsEstablished = 3
)

func tier(count, moderate, high int) Confidence {
	switch {
	case count >= high:
		return ConfidenceHigh
	case count >= moderate:
		return ConfidenceModerate
	default:
		return ConfidenceLow
	}
}

// mealConfidence derives confidence from the week's meal count.
func mealConfidence(totalMeals int) Confidence {
	return tier(totalMeals, MealCountModerate, MealCountHigh)
}

// checkinConfidence derives confidence from the week's check-in count.
func checkinConfidence(checkins int) Confidence {
	return tier(checkins, CheckinModerate, CheckinHigh)
}

// sleepConfidence derives confidence from the number of days with sleep logs.
func sleepConfidence(daysLogged int) Confidence {
	return tier(daysLogged, SleepDaysModerate, SleepDaysHigh)
}

// glucoseConfidence derives confidence from the week's reading count.
func glucoseConfidence(logs int) Confidence {
	return tier(logs, GlucoseLogsModerate, GlucoseLogsHigh)
}
