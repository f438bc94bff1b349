package insight

import (
	"strings"
	"testing"
)

// --- MealInsights ---

func TestMealInsights_LowVolumeOnlySetup(t *testing.T) {
	out := MealInsights(Signals{TotalMealsThisWeek: 2, AvgFibrePerDay: 12, CheckinsThisWeek: 4})
	if len(out) != 1 {
		t.Fatalf("expected exactly 1 insight, got %d", len(out))
	}
	if out[0].ID != "meals-setup" {
		t.Errorf("expected meals-setup, got %s", out[0].ID)
	}
	if out[0].Confidence != ConfidenceLow {
		t.Errorf("expected low confidence, got %s", out[0].Confidence)
	}
	if out[0].Action.ActionType != ActionLogMeal {
		t.Errorf("expected %s action, got %s", ActionLogMeal, out[0].Action.ActionType)
	}
}

func TestMealInsights_FibreAnchorAndStreak(t *testing.T) {
	out := MealInsights(Signals{TotalMealsThisWeek: 7, AvgFibrePerDay: 18, CheckinsThisWeek: 5})
	if len(out) != 2 {
		t.Fatalf("expected 2 insights, got %d", len(out))
	}
	if out[0].ID != "meals-fibre-anchor" || out[1].ID != "meals-checkin-streak" {
		t.Errorf("unexpected IDs: %s, %s", out[0].ID, out[1].ID)
	}
	if out[0].Confidence != ConfidenceHigh {
		t.Errorf("7 meals should give high confidence, got %s", out[0].Confidence)
	}
	if out[1].Confidence != ConfidenceHigh {
		t.Errorf("5 check-ins should give high confidence, got %s", out[1].Confidence)
	}
}

func TestMealInsights_NoFibreDataSkipsAnchor(t *testing.T) {
	out := MealInsights(Signals{TotalMealsThisWeek: 4})
	if len(out) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(out))
	}
	if out[0].ID != "meals-checkin-setup" {
		t.Errorf("expected meals-checkin-setup, got %s", out[0].ID)
	}
}

func TestMealInsights_LunchCravingsSetTimeContext(t *testing.T) {
	out := MealInsights(Signals{TotalMealsThisWeek: 5, AvgFibrePerDay: 10, LunchCravingsHigher: true})
	var anchor *Insight
	for i := range out {
		if out[i].ID == "meals-fibre-anchor" {
			anchor = &out[i]
		}
	}
	if anchor == nil {
		t.Fatal("expected fibre anchor insight")
	}
	if anchor.TimeContext != "midday" {
		t.Errorf("expected midday time context, got %q", anchor.TimeContext)
	}
	if !strings.Contains(anchor.MicroStep, "lunch") {
		t.Errorf("micro step should target lunch, got %q", anchor.MicroStep)
	}
}

// --- ActivityInsights ---

func TestActivityInsights_DinnerWalkNudgeBelowHalf(t *testing.T) {
	out := ActivityInsights(Signals{TotalMealsThisWeek: 7, TotalDinners: 4, DinnersWithWalk: 1})
	if len(out) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(out))
	}
	if out[0].ID != "activity-dinner-walk" {
		t.Errorf("expected activity-dinner-walk, got %s", out[0].ID)
	}
}

func TestActivityInsights_DinnerWalkHabitAtHalf(t *testing.T) {
	// A rate of exactly 0.5 is not below target; the praise variant fires.
	out := ActivityInsights(Signals{TotalMealsThisWeek: 7, TotalDinners: 4, DinnersWithWalk: 2})
	if len(out) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(out))
	}
	if out[0].ID != "activity-dinner-walk-habit" {
		t.Errorf("expected activity-dinner-walk-habit, got %s", out[0].ID)
	}
}

func TestActivityInsights_StepsCopySwitchesAtTarget(t *testing.T) {
	low := ActivityInsights(Signals{AvgSteps: 3000})
	high := ActivityInsights(Signals{AvgSteps: 8000})
	if len(low) != 1 || len(high) != 1 {
		t.Fatalf("expected 1 insight each, got %d and %d", len(low), len(high))
	}
	if low[0].ID != "activity-steps" || high[0].ID != "activity-steps" {
		t.Errorf("unexpected IDs: %s, %s", low[0].ID, high[0].ID)
	}
	if low[0].Title == high[0].Title {
		t.Error("expected different copy above and below the steps target")
	}
}

func TestActivityInsights_NoData(t *testing.T) {
	if out := ActivityInsights(Signals{}); len(out) != 0 {
		t.Fatalf("expected no insights without activity data, got %d", len(out))
	}
}

// --- SleepInsights ---

func TestSleepInsights_FewDaysOnlySetup(t *testing.T) {
	out := SleepInsights(Signals{SleepDaysLogged: 2, AvgSleepHours: 5.0})
	if len(out) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(out))
	}
	if out[0].ID != "sleep-setup" {
		t.Errorf("expected sleep-setup, got %s", out[0].ID)
	}
	if out[0].Confidence != ConfidenceModerate {
		t.Errorf("2 logged days should give moderate confidence, got %s", out[0].Confidence)
	}
}

func TestSleepInsights_ShortNightsGetWindDown(t *testing.T) {
	out := SleepInsights(Signals{SleepDaysLogged: 4, AvgSleepHours: 6.0})
	if len(out) != 1 || out[0].ID != "sleep-winddown" {
		t.Fatalf("expected sleep-winddown, got %+v", out)
	}
	if out[0].Action.ActionType != ActionWindDown {
		t.Errorf("expected %s action, got %s", ActionWindDown, out[0].Action.ActionType)
	}
}

func TestSleepInsights_SolidRest(t *testing.T) {
	out := SleepInsights(Signals{SleepDaysLogged: 5, AvgSleepHours: 7.4})
	if len(out) != 1 || out[0].ID != "sleep-solid" {
		t.Fatalf("expected sleep-solid, got %+v", out)
	}
}

func TestSleepInsights_DaysWithoutHoursIsSilent(t *testing.T) {
	if out := SleepInsights(Signals{SleepDaysLogged: 4}); out != nil {
		t.Fatalf("expected nil with no average hours, got %+v", out)
	}
}

// --- GlucoseInsights ---

func TestGlucoseInsights_FewReadingsOnlySetup(t *testing.T) {
	out := GlucoseInsights(Signals{GlucoseLogsCount: 3, TimeInZonePercent: 90})
	if len(out) != 1 || out[0].ID != "glucose-setup" {
		t.Fatalf("expected glucose-setup, got %+v", out)
	}
	if out[0].Confidence != ConfidenceModerate {
		t.Errorf("3 readings should give moderate confidence, got %s", out[0].Confidence)
	}
}

func TestGlucoseInsights_FibrePairingWins(t *testing.T) {
	out := GlucoseInsights(Signals{GlucoseLogsCount: 6, LowFibreMealsAboveZone: true, TimeInZonePercent: 40})
	if len(out) != 1 || out[0].ID != "glucose-fibre-pairing" {
		t.Fatalf("expected glucose-fibre-pairing, got %+v", out)
	}
	if out[0].Action.ActionType != ActionPairFibre {
		t.Errorf("expected %s action, got %s", ActionPairFibre, out[0].Action.ActionType)
	}
}

func TestGlucoseInsights_ZoneCopySwitchesAtTarget(t *testing.T) {
	low := GlucoseInsights(Signals{GlucoseLogsCount: 6, TimeInZonePercent: 50})
	high := GlucoseInsights(Signals{GlucoseLogsCount: 6, TimeInZonePercent: 80})
	if len(low) != 1 || len(high) != 1 {
		t.Fatalf("expected 1 insight each, got %d and %d", len(low), len(high))
	}
	if low[0].ID != "glucose-zone" || high[0].ID != "glucose-zone" {
		t.Errorf("unexpected IDs: %s, %s", low[0].ID, high[0].ID)
	}
	if low[0].Title == high[0].Title {
		t.Error("expected different copy above and below the zone target")
	}
}

// --- WeightInsights ---

func TestWeightInsights_Tiers(t *testing.T) {
	tests := []struct {
		count  int
		wantID string
	}{
		{0, "weight-setup"},
		{1, "weight-cadence"},
		{2, "weight-cadence"},
		{3, ""},
		{10, ""},
	}
	for _, tt := range tests {
		out := WeightInsights(Signals{WeightLogsCount: tt.count})
		if tt.wantID == "" {
			if len(out) != 0 {
				t.Errorf("count %d: expected silence, got %d insights", tt.count, len(out))
			}
			continue
		}
		if len(out) != 1 || out[0].ID != tt.wantID {
			t.Errorf("count %d: expected %s, got %+v", tt.count, tt.wantID, out)
		}
	}
}

// --- build ---

func TestBuild_FillsPresentationMetadata(t *testing.T) {
	in := build("x", CategorySleep, ConfidenceLow, newAction(ActionLogSleep, "sleep_days_logged"),
		"t", "r", "b", "m")
	if in.Icon != "moon" {
		t.Errorf("expected moon icon, got %q", in.Icon)
	}
	if in.Gradient[0] == "" || in.Gradient[1] == "" {
		t.Error("expected gradient pair")
	}
	if in.CTA.Route != "/log/sleep" {
		t.Errorf("expected sleep route, got %q", in.CTA.Route)
	}
	if in.Action.WindowHours != DefaultActionWindowHours {
		t.Errorf("expected default window, got %d", in.Action.WindowHours)
	}
}
