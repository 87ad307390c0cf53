package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studybuddy/internal/engine"
	"github.com/abhisek/studybuddy/internal/studyplan"
	"github.com/abhisek/studybuddy/internal/tui"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a day-by-day study plan from documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		hours, _ := cmd.Flags().GetInt("hours")
		asJSON, _ := cmd.Flags().GetBool("json")
		if days < 0 || hours < 0 {
			return fmt.Errorf("--days and --hours must be positive")
		}

		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		ids, err := selectedDocuments(ctx, cmd, d.store)
		if err != nil {
			return err
		}

		prefs := studyplan.Preferences{DurationDays: days, HoursPerDay: hours}
		if prefs.DurationDays == 0 {
			prefs.DurationDays = d.cfg.Plan.Days
		}
		if prefs.HoursPerDay == 0 {
			prefs.HoursPerDay = d.cfg.Plan.Hours
		}

		resp := d.recorder.Dispatch(ctx, engine.StudyPlanRequest{DocumentIDs: ids, Preferences: prefs})
		if asJSON {
			return printJSON(resp)
		}

		fmt.Println(resp.Content)
		if resp.Plan != nil {
			fmt.Println()
			fmt.Println(tui.RenderPlan(resp.Plan, 80))
		}
		return nil
	},
}

func init() {
	addDocFlags(planCmd)
	planCmd.Flags().Int("days", 0, "Number of days to plan (default from config)")
	planCmd.Flags().Int("hours", 0, "Study hours per day (default from config)")
	planCmd.Flags().Bool("json", false, "Print the plan as JSON")
}
