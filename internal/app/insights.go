package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/brightfield-health/wellwatch/internal/config"
	"github.com/brightfield-health/wellwatch/internal/insight"
	"github.com/brightfield-health/wellwatch/internal/output"
	"github.com/brightfield-health/wellwatch/internal/scoring"
	"github.com/brightfield-health/wellwatch/internal/signal"
	"github.com/brightfield-health/wellwatch/internal/store"
)

var (
	insightsRefresh  bool
	insightsCategory string
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Generate this week's ranked insights",
	Long: `Aggregate the last seven days of logs, generate insight candidates per
category, and print the ranked, capped list. Results are cached for the
rest of the day (12h by default); use --refresh to force regeneration.

When scoring_url is configured, the remote scoring service ranks the
week instead; any failure falls back to the local engine.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		applyOutputFlags()
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		now := time.Now()
		cacheKey := store.CacheKey(cfg.User, cfg.TrackingMode, now)

		if insightsRefresh {
			if err := db.DeleteCache(cacheKey); err != nil {
				return fmt.Errorf("clearing cache: %w", err)
			}
		} else {
			entry, err := db.GetCache(cacheKey, now)
			if err != nil {
				return fmt.Errorf("reading cache: %w", err)
			}
			if entry != nil {
				var cached []insight.Insight
				if err := json.Unmarshal([]byte(entry.Payload), &cached); err == nil {
					if flagVerbose {
						fmt.Fprintf(os.Stderr, "cached result from %s\n", entry.CreatedAt.Local().Format("15:04"))
					}
					return renderInsights(filterCategory(cached, insightsCategory))
				}
				// Undecodable payload: regenerate rather than fail.
				_ = db.DeleteCache(cacheKey)
			}
		}

		zone := signal.Zone{Low: cfg.GlucoseZone.Low, High: cfg.GlucoseZone.High}
		sig, err := signal.Aggregate(db, zone, now)
		if err != nil {
			return err
		}

		mode := insight.TrackingMode(cfg.TrackingMode)
		opts := engineOptions(cfg)

		insights, source := generateInsights(cfg, sig, mode, opts)

		if err := persistRun(db, cfg, source, insights, now); err != nil {
			// Persistence problems should not hide the insights themselves.
			fmt.Fprintln(os.Stderr, "warning: could not save run:", err)
		}

		// Stale entries for previous days accumulate; sweep them on the way out.
		if n, err := db.PruneCache(now); err == nil && n > 0 && flagVerbose {
			fmt.Fprintf(os.Stderr, "pruned %d expired cache entries\n", n)
		}

		return renderInsights(filterCategory(insights, insightsCategory))
	},
}

// generateInsights prefers the remote scoring service when configured and
// falls back to the local engine on any failure.
func generateInsights(cfg *config.Config, sig insight.Signals, mode insight.TrackingMode, opts insight.Options) ([]insight.Insight, string) {
	if cfg.ScoringURL != "" {
		client := scoring.NewClient(cfg.ScoringURL, time.Duration(cfg.ScoringTimeoutSeconds)*time.Second)
		remote, err := client.Rank(sig, mode, opts)
		if err == nil {
			return remote, "remote"
		}
		if flagVerbose {
			fmt.Fprintln(os.Stderr, "scoring service unavailable, using local engine:", err)
		}
	}
	return insight.Generate(sig, mode, opts), "local"
}

// persistRun stores the run as a snapshot plus insight rows and refreshes
// the day's cache entry.
func persistRun(db *store.DB, cfg *config.Config, source string, insights []insight.Insight, now time.Time) error {
	snapID, err := db.CreateSnapshot(cfg.TrackingMode, cfg.ExperienceVariant, source, appVersion)
	if err != nil {
		return err
	}
	for i, in := range insights {
		row := &store.InsightRow{
			SnapshotID:     snapID,
			Position:       i,
			InsightID:      in.ID,
			Category:       string(in.Category),
			Title:          in.Title,
			Recommendation: in.Recommendation,
			Because:        in.Because,
			MicroStep:      in.MicroStep,
			Confidence:     string(in.Confidence),
			ActionType:     in.Action.ActionType,
			WindowHours:    in.Action.WindowHours,
			MetricKey:      in.Action.MetricKey,
		}
		if err := db.InsertInsight(row); err != nil {
			return err
		}
	}

	payload, err := json.Marshal(insights)
	if err != nil {
		return err
	}
	ttl := time.Duration(cfg.CacheTTLHours) * time.Hour
	return db.PutCache(store.CacheKey(cfg.User, cfg.TrackingMode, now), string(payload), now, ttl)
}

// filterCategory narrows the list to one category when --category is set.
func filterCategory(insights []insight.Insight, category string) []insight.Insight {
	if category == "" {
		return insights
	}
	var out []insight.Insight
	for _, in := range insights {
		if string(in.Category) == category {
			out = append(out, in)
		}
	}
	return out
}

// renderInsights prints the final list, JSON or styled cards.
func renderInsights(insights []insight.Insight) error {
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(insights)
	}

	if len(insights) == 0 {
		fmt.Println("No insights this week. Log a few meals to get started:")
		fmt.Println("  wellwatch log meal --type dinner --fibre 12")
		return nil
	}

	fmt.Println(output.Section("This Week"))
	for i, in := range insights {
		fmt.Println()
		fmt.Printf("%s %s  %s\n",
			output.StyleMuted.Render(fmt.Sprintf("%d.", i+1)),
			output.StyleBold.Render(in.Title),
			output.StyleMuted.Render(fmt.Sprintf("[%s · %s]", in.Category, in.Confidence)))
		fmt.Printf("   %s\n", in.Recommendation)
		fmt.Printf("   %s\n", output.StyleMuted.Render(in.Because))
		if in.MicroStep != "" {
			fmt.Printf("   %s %s\n", output.StyleAccent.Render("Try:"), in.MicroStep)
		}
	}
	return nil
}

func init() {
	insightsCmd.Flags().BoolVar(&insightsRefresh, "refresh", false, "Ignore the cache and regenerate")
	insightsCmd.Flags().StringVar(&insightsCategory, "category", "", "Only show one category (meals, activity, sleep, glucose, weight)")
	rootCmd.AddCommand(insightsCmd)
}
