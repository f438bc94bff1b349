package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/brightfield-health/wellwatch/internal/output"
	"github.com/brightfield-health/wellwatch/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [snapshot-id]",
	Short: "List and replay past insight runs",
	Long: `Without arguments, list recent insight runs. With a snapshot ID, show
that run's insights in their stored rank order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		applyOutputFlags()

		db, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		if len(args) == 1 {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid snapshot ID %q", args[0])
			}
			return showSnapshot(db, id)
		}

		snaps, err := db.ListSnapshots(historyLimit)
		if err != nil {
			return fmt.Errorf("listing snapshots: %w", err)
		}

		if flagJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(snaps)
		}

		if len(snaps) == 0 {
			fmt.Println("No insight runs yet. Run 'wellwatch insights' first.")
			return nil
		}

		fmt.Println(output.Section("Insight Runs"))
		fmt.Println()
		t := output.NewTable("ID", "When", "Mode", "Variant", "Source")
		for _, s := range snaps {
			t.AddRow(
				strconv.FormatInt(s.ID, 10),
				s.TakenAt.Local().Format("Jan 2 15:04"),
				s.TrackingMode,
				s.Variant,
				s.Source,
			)
		}
		t.Print()
		return nil
	},
}

// showSnapshot prints one stored run's insights in rank order.
func showSnapshot(db *store.DB, id int64) error {
	snap, err := db.GetSnapshot(id)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	if snap == nil {
		return fmt.Errorf("no snapshot with ID %d", id)
	}

	rows, err := db.SnapshotInsights(id)
	if err != nil {
		return fmt.Errorf("loading snapshot insights: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Snapshot *store.Snapshot    `json:"snapshot"`
			Insights []store.InsightRow `json:"insights"`
		}{snap, rows})
	}

	fmt.Println(output.Section(fmt.Sprintf("Run %d · %s · %s", snap.ID, snap.TakenAt.Local().Format("Jan 2 15:04"), snap.Source)))
	for _, r := range rows {
		fmt.Println()
		fmt.Printf("%s %s  %s\n",
			output.StyleMuted.Render(fmt.Sprintf("%d.", r.Position+1)),
			output.StyleBold.Render(r.Title),
			output.StyleMuted.Render(fmt.Sprintf("[%s · %s]", r.Category, r.Confidence)))
		fmt.Printf("   %s\n", r.Recommendation)
		fmt.Printf("   %s\n", output.StyleMuted.Render(r.Because))
		if r.MicroStep != "" {
			fmt.Printf("   %s %s\n", output.StyleAccent.Render("Try:"), r.MicroStep)
		}
	}
	return nil
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to list")
	rootCmd.AddCommand(historyCmd)
}
