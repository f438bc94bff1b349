package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/brightfield-health/wellwatch/internal/output"
	"github.com/brightfield-health/wellwatch/internal/signal"
)

var signalsCmd = &cobra.Command{
	Use:   "signals",
	Short: "Show this week's aggregated signals",
	Long: `Aggregate the last seven days of logged events into the signal set the
insight engine consumes, and print it. Useful for checking what the
engine will see before running 'wellwatch insights'.`,
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

		zone := signal.Zone{Low: cfg.GlucoseZone.Low, High: cfg.GlucoseZone.High}
		sig, err := signal.Aggregate(db, zone, time.Now())
		if err != nil {
			return err
		}

		if flagJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(sig)
		}

		fmt.Println(output.Section("This Week's Signals"))
		fmt.Println()

		t := output.NewTable("Signal", "Value")
		t.AddRow("Meals logged", strconv.Itoa(sig.TotalMealsThisWeek))
		t.AddRow("Avg fibre/day", fmt.Sprintf("%.1fg", sig.AvgFibrePerDay))
		t.AddRow("Check-ins", strconv.Itoa(sig.CheckinsThisWeek))
		t.AddRow("Lunch cravings higher", yesNo(sig.LunchCravingsHigher))
		t.AddRow("Avg steps", fmt.Sprintf("%.0f", sig.AvgSteps))
		t.AddRow("Dinners", strconv.Itoa(sig.TotalDinners))
		t.AddRow("Dinners with walk", strconv.Itoa(sig.DinnersWithWalk))
		t.AddRow("Sleep days logged", strconv.Itoa(sig.SleepDaysLogged))
		t.AddRow("Avg sleep", fmt.Sprintf("%.1fh", sig.AvgSleepHours))
		if cfg.TrackingMode != "meals_only" {
			t.AddRow("Glucose readings", strconv.Itoa(sig.GlucoseLogsCount))
			t.AddRow("Time in zone", fmt.Sprintf("%.0f%%", sig.TimeInZonePercent))
			t.AddRow("Low-fibre above-zone", yesNo(sig.LowFibreMealsAboveZone))
		}
		t.AddRow("Weigh-ins", strconv.Itoa(sig.WeightLogsCount))
		t.Print()

		return nil
	},
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func init() {
	rootCmd.AddCommand(signalsCmd)
}
