package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/brightfield-health/wellwatch/internal/output"
	"github.com/brightfield-health/wellwatch/internal/store"
)

var (
	logMealType    string
	logMealFibre   float64
	logMealCraving int
	logMealWalked  bool
	logMealNote    string

	logCheckinFullness int
	logCheckinEnergy   int
	logCheckinNote     string

	logGlucoseAfterFibre float64
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record meals, check-ins, glucose, sleep, steps, and weight",
	Long: `Record a wellness event. Each event type is a subcommand:

  wellwatch log meal --type dinner --fibre 12 --walked
  wellwatch log checkin --fullness 4 --energy 3
  wellwatch log glucose 6.2 --after-fibre 3
  wellwatch log sleep 7.5
  wellwatch log steps 8200
  wellwatch log weight 81.4`,
}

var logMealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Record a meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		applyOutputFlags()
		switch logMealType {
		case store.MealBreakfast, store.MealLunch, store.MealDinner, store.MealSnack:
		default:
			return fmt.Errorf("unknown meal type %q (breakfast, lunch, dinner, snack)", logMealType)
		}
		if logMealCraving < 0 || logMealCraving > 5 {
			return fmt.Errorf("craving must be 1-5 (got %d)", logMealCraving)
		}

		db, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		meal := &store.MealRow{
			MealType:     logMealType,
			FibreGrams:   logMealFibre,
			CravingLevel: logMealCraving,
			WalkedAfter:  logMealWalked,
			Note:         logMealNote,
		}
		if err := db.InsertMeal(meal); err != nil {
			return fmt.Errorf("recording meal: %w", err)
		}

		fmt.Printf("Logged %s (%s fibre)\n",
			output.StyleAccent.Render(logMealType),
			output.StyleBold.Render(fmt.Sprintf("%.0fg", logMealFibre)))
		return nil
	},
}

var logCheckinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Record a daily check-in",
	RunE: func(cmd *cobra.Command, args []string) error {
		applyOutputFlags()
		for name, v := range map[string]int{"fullness": logCheckinFullness, "energy": logCheckinEnergy} {
			if v < 0 || v > 5 {
				return fmt.Errorf("%s must be 1-5 (got %d)", name, v)
			}
		}

		db, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		checkin := &store.CheckinRow{
			Fullness: logCheckinFullness,
			Energy:   logCheckinEnergy,
			Note:     logCheckinNote,
		}
		if err := db.InsertCheckin(checkin); err != nil {
			return fmt.Errorf("recording check-in: %w", err)
		}

		fmt.Println("Logged check-in")
		return nil
	},
}

var logGlucoseCmd = &cobra.Command{
	Use:   "glucose <value>",
	Short: "Record a glucose reading (mmol/L)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		applyOutputFlags()
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil || value <= 0 {
			return fmt.Errorf("invalid reading %q", args[0])
		}

		db, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		reading := &store.GlucoseRow{Value: value, PriorMealFibre: logGlucoseAfterFibre}
		if !cmd.Flags().Changed("after-fibre") {
			reading.PriorMealFibre = -1 // no prior meal recorded
		}
		if err := db.InsertGlucose(reading); err != nil {
			return fmt.Errorf("recording reading: %w", err)
		}

		fmt.Printf("Logged reading %s\n", output.StyleBold.Render(fmt.Sprintf("%.1f", value)))
		return nil
	},
}

var logSleepCmd = &cobra.Command{
	Use:   "sleep <hours>",
	Short: "Record last night's sleep",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		applyOutputFlags()
		hours, err := strconv.ParseFloat(args[0], 64)
		if err != nil || hours <= 0 || hours > 24 {
			return fmt.Errorf("invalid hours %q", args[0])
		}

		db, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		if err := db.InsertSleep(&store.SleepRow{Hours: hours}); err != nil {
			return fmt.Errorf("recording sleep: %w", err)
		}

		fmt.Printf("Logged %s of sleep\n", output.StyleBold.Render(fmt.Sprintf("%.1fh", hours)))
		return nil
	},
}

var logStepsCmd = &cobra.Command{
	Use:   "steps <count>",
	Short: "Record a day's step count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		applyOutputFlags()
		steps, err := strconv.Atoi(args[0])
		if err != nil || steps < 0 {
			return fmt.Errorf("invalid step count %q", args[0])
		}

		db, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		if err := db.InsertSteps(&store.StepsRow{Steps: steps}); err != nil {
			return fmt.Errorf("recording steps: %w", err)
		}

		fmt.Printf("Logged %s steps\n", output.StyleBold.Render(strconv.Itoa(steps)))
		return nil
	},
}

var logWeightCmd = &cobra.Command{
	Use:   "weight <kg>",
	Short: "Record a weigh-in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		applyOutputFlags()
		kg, err := strconv.ParseFloat(args[0], 64)
		if err != nil || kg <= 0 {
			return fmt.Errorf("invalid weight %q", args[0])
		}

		db, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		if err := db.InsertWeight(&store.WeightRow{WeightKg: kg}); err != nil {
			return fmt.Errorf("recording weight: %w", err)
		}

		fmt.Printf("Logged %s\n", output.StyleBold.Render(fmt.Sprintf("%.1fkg", kg)))
		return nil
	},
}

func init() {
	logMealCmd.Flags().StringVar(&logMealType, "type", store.MealLunch, "Meal type: breakfast, lunch, dinner, snack")
	logMealCmd.Flags().Float64Var(&logMealFibre, "fibre", 0, "Fibre grams in the meal")
	logMealCmd.Flags().IntVar(&logMealCraving, "craving", 0, "Craving level 1-5")
	logMealCmd.Flags().BoolVar(&logMealWalked, "walked", false, "Walked within an hour after the meal")
	logMealCmd.Flags().StringVar(&logMealNote, "note", "", "Optional note")

	logCheckinCmd.Flags().IntVar(&logCheckinFullness, "fullness", 0, "Fullness 1-5")
	logCheckinCmd.Flags().IntVar(&logCheckinEnergy, "energy", 0, "Energy 1-5")
	logCheckinCmd.Flags().StringVar(&logCheckinNote, "note", "", "Optional note")

	logGlucoseCmd.Flags().Float64Var(&logGlucoseAfterFibre, "after-fibre", 0, "Fibre grams of the preceding meal")

	logCmd.AddCommand(logMealCmd)
	logCmd.AddCommand(logCheckinCmd)
	logCmd.AddCommand(logGlucoseCmd)
	logCmd.AddCommand(logSleepCmd)
	logCmd.AddCommand(logStepsCmd)
	logCmd.AddCommand(logWeightCmd)
	rootCmd.AddCommand(logCmd)
}
