/*
PURPOSE:
  Defines the 'check' subcommand.
  Helps debug connectivity and see what the ratings table holds.

REQUIREMENTS:
  User-specified:
  - Quick look at who submitted what, without writing files.

  Implementation-discovered:
  - Useful validation step before a full run.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Client.FetchRatings()

ERROR HANDLING:
  - Same fatal-on-fetch-failure behavior as run.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  rating-report check --url https://xyz.supabase.co

RELATED FILES:
  - internal/engine/client.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evallab/rating-report/internal/config"
	"github.com/evallab/rating-report/internal/engine"
	"github.com/evallab/rating-report/internal/model"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetch ratings and list which forms each record carries",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if urlOverride != "" {
			cfg.SupabaseURL = urlOverride
		}
		if keyOverride != "" {
			cfg.AnonKey = keyOverride
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		c := engine.New(cfg)
		records, err := c.FetchRatings(context.Background())
		if err != nil {
			return err
		}

		users := make(map[string]bool)
		for _, rec := range records {
			users[rec.UserID] = true
			fmt.Printf("- %-25s forms: %s\n", rec.UserID, formNames(rec.Data))
		}
		fmt.Printf("\n%d records, %d distinct users\n", len(records), len(users))

		return nil
	},
}

func formNames(data model.FormData) string {
	var names []string
	if data.DataQuality != nil {
		names = append(names, "data_quality")
	}
	if data.ModelEvaluation != nil {
		names = append(names, "model_evaluation")
	}
	if data.CotEvaluation != nil {
		names = append(names, "cot_evaluation")
	}
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&urlOverride, "url", "", "Supabase project URL (overrides config)")
	checkCmd.Flags().StringVar(&keyOverride, "anon-key", "", "Supabase anon key (prefer SUPABASE_ANON_KEY)")
}
