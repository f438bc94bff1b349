package insight

import (
	"reflect"
	"testing"
)

// richSignals covers every category with enough volume to produce the full
// candidate set.
func richSignals() Signals {
	return Signals{
		AvgFibrePerDay:     18,
		TotalMealsThisWeek: 9,
		CheckinsThisWeek:   5,
		AvgSteps:           6200,
		TotalDinners:       5,
		DinnersWithWalk:    1,
		AvgSleepHours:      6.1,
		SleepDaysLogged:    4,
		GlucoseLogsCount:   6,
		TimeInZonePercent:  55,
		WeightLogsCount:    1,
	}
}

// --- Generate ---

func TestGenerate_EmptySignals(t *testing.T) {
	out := Generate(Signals{}, ModeMealsOnly, Options{})
	if len(out) == 0 {
		t.Fatal("expected setup insights for empty signals")
	}
	for _, in := range out {
		if in.ID == "" || in.Title == "" || in.Category == "" {
			t.Errorf("incomplete insight: %+v", in)
		}
		if in.Confidence != ConfidenceLow {
			t.Errorf("insight %s: expected low confidence with no data, got %s", in.ID, in.Confidence)
		}
	}
}

func TestGenerate_MealsOnlyExcludesGlucose(t *testing.T) {
	sig := richSignals()
	for _, variant := range []ExperienceVariant{VariantLegacy, VariantBehaviorV1} {
		out := Generate(sig, ModeMealsOnly, Options{
			ExperienceVariant:   variant,
			ReadinessLevel:      ReadinessMedium,
			ShowGlucoseAdvanced: true,
		})
		for _, in := range out {
			if in.Category == CategoryGlucose {
				t.Errorf("variant %s: glucose insight %s generated in meals_only mode", variant, in.ID)
			}
		}
	}
}

func TestGenerate_BehaviorV1GlucoseNeedsOptIn(t *testing.T) {
	sig := richSignals()
	out := Generate(sig, ModeGlucoseTracking, Options{
		ExperienceVariant: VariantBehaviorV1,
		ReadinessLevel:    ReadinessMedium,
		// ShowGlucoseAdvanced left false.
	})
	for _, in := range out {
		if in.Category == CategoryGlucose {
			t.Errorf("glucose insight %s generated without opt-in under behavior_v1", in.ID)
		}
	}
}

func TestGenerate_BehaviorV1GlucoseNeedsVolume(t *testing.T) {
	sig := richSignals()
	sig.GlucoseLogsCount = GlucoseLogsHigh - 1
	out := Generate(sig, ModeGlucoseTracking, Options{
		ExperienceVariant:   VariantBehaviorV1,
		ReadinessLevel:      ReadinessMedium,
		ShowGlucoseAdvanced: true,
	})
	for _, in := range out {
		if in.Category == CategoryGlucose {
			t.Errorf("glucose insight %s generated with only %d readings", in.ID, sig.GlucoseLogsCount)
		}
	}
}

func TestGenerate_LegacyModeStillGatesByMode(t *testing.T) {
	// Under legacy, manual_glucose_optional and glucose_tracking both admit
	// the category with no opt-in required.
	sig := richSignals()
	sig.GlucoseLogsCount = 2 // enough for the setup candidate
	for _, mode := range []TrackingMode{ModeManualGlucoseOptional, ModeGlucoseTracking} {
		out := Generate(sig, mode, Options{ExperienceVariant: VariantLegacy})
		found := false
		for _, in := range out {
			if in.Category == CategoryGlucose {
				found = true
			}
		}
		if !found {
			t.Errorf("mode %s: expected a glucose insight under legacy", mode)
		}
	}
}

func TestGenerate_LegacyTruncatesFlat(t *testing.T) {
	// Rich signals in glucose_tracking produce seven candidates; legacy
	// keeps the first six in concatenation order, dropping weight.
	out := Generate(richSignals(), ModeGlucoseTracking, Options{ExperienceVariant: VariantLegacy})
	if len(out) != LegacyLimit {
		t.Fatalf("expected %d insights, got %d", LegacyLimit, len(out))
	}
	for _, in := range out {
		if in.Category == CategoryWeight {
			t.Errorf("weight insight %s survived legacy truncation", in.ID)
		}
	}
	// Concatenation order: meals lead under legacy.
	if out[0].Category != CategoryMeals {
		t.Errorf("expected meals first under legacy, got %s", out[0].Category)
	}
}

func TestGenerate_BehaviorV1RespectsCaps(t *testing.T) {
	out := Generate(richSignals(), ModeGlucoseTracking, Options{
		ExperienceVariant:   VariantBehaviorV1,
		ReadinessLevel:      ReadinessMedium,
		ComBBarrier:         BarrierUnsure,
		ShowGlucoseAdvanced: true,
	})
	if len(out) > GlobalCap {
		t.Fatalf("got %d insights, cap is %d", len(out), GlobalCap)
	}
	counts := make(map[Category]int)
	for _, in := range out {
		counts[in.Category]++
	}
	for cat, n := range counts {
		if n > PerCategoryCap {
			t.Errorf("category %s has %d insights, cap is %d", cat, n, PerCategoryCap)
		}
	}
}

func TestGenerate_LowReadinessTightensCaps(t *testing.T) {
	out := Generate(richSignals(), ModeGlucoseTracking, Options{
		ExperienceVariant:   VariantBehaviorV1,
		ReadinessLevel:      ReadinessLow,
		ShowGlucoseAdvanced: true,
	})
	if len(out) > GlobalCapLowReady {
		t.Fatalf("got %d insights, low-readiness cap is %d", len(out), GlobalCapLowReady)
	}
	counts := make(map[Category]int)
	for _, in := range out {
		counts[in.Category]++
		if counts[in.Category] > PerCategoryCapLowReady {
			t.Errorf("category %s exceeds low-readiness per-category cap", in.Category)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	sig := richSignals()
	opts := Options{
		ExperienceVariant:   VariantBehaviorV1,
		ReadinessLevel:      ReadinessHigh,
		ComBBarrier:         BarrierMotivation,
		ShowGlucoseAdvanced: true,
	}
	first := Generate(sig, ModeGlucoseTracking, opts)
	second := Generate(sig, ModeGlucoseTracking, opts)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different output")
	}
}

func TestGenerate_UniqueIDs(t *testing.T) {
	out := Generate(richSignals(), ModeGlucoseTracking, Options{
		ExperienceVariant:   VariantBehaviorV1,
		ReadinessLevel:      ReadinessMedium,
		ShowGlucoseAdvanced: true,
	})
	seen := make(map[string]bool)
	for _, in := range out {
		if seen[in.ID] {
			t.Errorf("duplicate insight ID %s", in.ID)
		}
		seen[in.ID] = true
	}
}

func TestGenerate_BehaviorV1RanksByScore(t *testing.T) {
	opts := Options{
		ExperienceVariant:   VariantBehaviorV1,
		ReadinessLevel:      ReadinessMedium,
		ComBBarrier:         BarrierUnsure,
		ShowGlucoseAdvanced: true,
	}
	out := Generate(richSignals(), ModeGlucoseTracking, opts)
	if len(out) < 2 {
		t.Fatalf("expected several insights, got %d", len(out))
	}
	for i := 1; i < len(out); i++ {
		if Score(out[i], opts) > Score(out[i-1], opts) {
			t.Errorf("not sorted at index %d: %d > %d", i, Score(out[i], opts), Score(out[i-1], opts))
		}
	}
}

// --- glucoseEligible ---

func TestGlucoseEligible(t *testing.T) {
	tests := []struct {
		name string
		mode TrackingMode
		opts Options
		sig  Signals
		want bool
	}{
		{"meals only", ModeMealsOnly, Options{}, Signals{GlucoseLogsCount: 10}, false},
		{"legacy manual optional", ModeManualGlucoseOptional, Options{}, Signals{}, true},
		{"legacy tracking", ModeGlucoseTracking, Options{}, Signals{}, true},
		{
			"v1 opted in with volume",
			ModeGlucoseTracking,
			Options{ExperienceVariant: VariantBehaviorV1, ShowGlucoseAdvanced: true},
			Signals{GlucoseLogsCount: 5},
			true,
		},
		{
			"v1 opted in without volume",
			ModeGlucoseTracking,
			Options{ExperienceVariant: VariantBehaviorV1, ShowGlucoseAdvanced: true},
			Signals{GlucoseLogsCount: 4},
			false,
		},
		{
			"v1 volume without opt-in",
			ModeGlucoseTracking,
			Options{ExperienceVariant: VariantBehaviorV1},
			Signals{GlucoseLogsCount: 10},
			false,
		},
		{
			"v1 wrong mode",
			ModeMealsOnly,
			Options{ExperienceVariant: VariantBehaviorV1, ShowGlucoseAdvanced: true},
			Signals{GlucoseLogsCount: 10},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := glucoseEligible(tt.mode, tt.opts, tt.sig); got != tt.want {
				t.Errorf("glucoseEligible() = %v, want %v", got, tt.want)
			}
		})
	}
}
