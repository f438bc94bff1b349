// Package signal reduces the last week of logged events into the flat
// signal struct the insight engine consumes. Missing data never errors; it
// produces zero values, which the engine reads as "unknown".
package signal

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/brightfield-health/wellwatch/internal/insight"
	"github.com/brightfield-health/wellwatch/internal/store"
)

// WindowDays is the aggregation window.
const WindowDays = 7

// LowFibreMealGrams is the fibre content below which a preceding meal
// counts as low-fibre when classifying above-zone readings.
const LowFibreMealGrams = 5.0

// Zone is the user's configured glucose target range. Readings inside
// [Low, High] count as in zone.
type Zone struct {
	Low  float64
	High float64
}

// Aggregate computes the weekly signal struct from the store. The
// per-category queries are independent and run concurrently.
func Aggregate(db *store.DB, zone Zone, now time.Time) (insight.Signals, error) {
	since := now.AddDate(0, 0, -WindowDays)

	var (
		sig      insight.Signals
		meals    []store.MealRow
		glucose  []store.GlucoseRow
		sleeps   []store.SleepRow
		steps    []store.StepsRow
		checkins int
		weights  int
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		meals, err = db.MealsSince(since)
		return err
	})
	g.Go(func() (err error) {
		checkins, err = db.CheckinCountSince(since)
		return err
	})
	g.Go(func() (err error) {
		glucose, err = db.GlucoseSince(since)
		return err
	})
	g.Go(func() (err error) {
		sleeps, err = db.SleepSince(since)
		return err
	})
	g.Go(func() (err error) {
		steps, err = db.StepsSince(since)
		return err
	})
	g.Go(func() (err error) {
		weights, err = db.WeightCountSince(since)
		return err
	})
	if err := g.Wait(); err != nil {
		return insight.Signals{}, fmt.Errorf("aggregating weekly signals: %w", err)
	}

	reduceMeals(&sig, meals)
	sig.CheckinsThisWeek = checkins
	reduceGlucose(&sig, glucose, zone)
	reduceSleep(&sig, sleeps)
	reduceSteps(&sig, steps)
	sig.WeightLogsCount = weights

	return sig, nil
}

func reduceMeals(sig *insight.Signals, meals []store.MealRow) {
	sig.TotalMealsThisWeek = len(meals)

	var totalFibre float64
	var lunchCravingSum, lunchCravingN int
	var otherCravingSum, otherCravingN int

	for _, m := range meals {
		totalFibre += m.FibreGrams

		if m.MealType == store.MealDinner {
			sig.TotalDinners++
			if m.WalkedAfter {
				sig.DinnersWithWalk++
			}
		}

		if m.CravingLevel > 0 {
			if m.MealType == store.MealLunch {
				lunchCravingSum += m.CravingLevel
				lunchCravingN++
			} else {
				otherCravingSum += m.CravingLevel
				otherCravingN++
			}
		}
	}

	if len(meals) > 0 {
		sig.AvgFibrePerDay = totalFibre / WindowDays
	}

	if lunchCravingN > 0 && otherCravingN > 0 {
		lunchAvg := float64(lunchCravingSum) / float64(lunchCravingN)
		otherAvg := float64(otherCravingSum) / float64(otherCravingN)
		sig.LunchCravingsHigher = lunchAvg > otherAvg
	}
}

func reduceGlucose(sig *insight.Signals, readings []store.GlucoseRow, zone Zone) {
	sig.GlucoseLogsCount = len(readings)
	if len(readings) == 0 {
		return
	}

	inZone := 0
	for _, r := range readings {
		if r.Value >= zone.Low && r.Value <= zone.High {
			inZone++
		}
		// A reading above the zone following a low-fibre meal is the
		// pairing signal. PriorMealFibre < 0 means no prior meal recorded.
		if r.Value > zone.High && r.PriorMealFibre >= 0 && r.PriorMealFibre < LowFibreMealGrams {
			sig.LowFibreMealsAboveZone = true
		}
	}
	sig.TimeInZonePercent = float64(inZone) / float64(len(readings)) * 100
}

func reduceSleep(sig *insight.Signals, sleeps []store.SleepRow) {
	if len(sleeps) == 0 {
		return
	}

	days := make(map[string]bool, len(sleeps))
	var totalHours float64
	for _, s := range sleeps {
		totalHours += s.Hours
		days[dayOf(s.LoggedAt)] = true
	}

	sig.SleepDaysLogged = len(days)
	sig.AvgSleepHours = totalHours / float64(len(sleeps))
}

func reduceSteps(sig *insight.Signals, steps []store.StepsRow) {
	if len(steps) == 0 {
		return
	}

	// One entry per day is the normal shape; multiple entries on one day
	// are summed before averaging.
	byDay := make(map[string]int, len(steps))
	for _, s := range steps {
		byDay[dayOf(s.LoggedAt)] += s.Steps
	}

	total := 0
	for _, n := range byDay {
		total += n
	}
	sig.AvgSteps = float64(total) / float64(len(byDay))
}

// dayOf extracts the calendar-day prefix of an RFC3339 logged_at value.
func dayOf(loggedAt string) string {
	if i := strings.IndexByte(loggedAt, 'T'); i > 0 {
		return loggedAt[:i]
	}
	return loggedAt
}
