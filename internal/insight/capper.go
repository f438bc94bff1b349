package insight

// Output bounds for the personalization path. Low readiness tightens both.
const (
	GlobalCap            = 6
	GlobalCapLowReady    = 4
	PerCategoryCap       = 2
	PerCategoryCapLowReady = 1

	// LegacyLimit is the flat truncation applied on the legacy path.
	LegacyLimit = 6
)

// CapDiversity walks the ranked list in order, admitting a candidate only
// while its category is under the per-category cap, and stops at the global
// cap. Rank order is preserved; candidates are never reordered here.
func CapDiversity(ranked []Insight, readiness ReadinessLevel) []Insight {
	globalCap, perCategory := GlobalCap, PerCategoryCap
	if readiness == ReadinessLow {
		globalCap, perCategory = GlobalCapLowReady, PerCategoryCapLowReady
	}

	counts := make(map[Category]int, len(categoryPriority))
	out := make([]Insight, 0, globalCap)
	for _, in := range ranked {
		if len(out) >= globalCap {
			break
		}
		if counts[in.Category] >= perCategory {
			continue
		}
		counts[in.Category]++
		out = append(out, in)
	}
	return out
}
