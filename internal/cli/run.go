/*
PURPOSE:
  Defines the 'run' subcommand.
  Executes the full fetch -> aggregate -> report pipeline.

REQUIREMENTS:
  User-specified:
  - Run the analysis.
  - Specific flags for overrides.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config, then validate before any network IO.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load/validation fails or the engine run fails.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> Validate -> Engine.Run.

USAGE:
  rating-report run --url https://xyz.supabase.co

SELF-HEALING INSTRUCTIONS:
  - Check flag names match Config struct fields generally.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/evallab/rating-report/internal/config"
	"github.com/evallab/rating-report/internal/engine"
)

var (
	urlOverride    string
	keyOverride    string
	outputOverride string
	jsonExport     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch all ratings and generate the three analysis reports",
	Long: `Fetches every record of the ratings table and generates one report per form:
1. Form 1: per-user hardness ratings grouped by system hardness level, plus CoT quality.
2. Form 2: per-user mean score for each evaluated model, pooled across datasets.
3. Form 3: per-user CoT quality from the standalone evaluation form.

Each report is written as a timestamped CSV in the output directory and printed
as an aligned table. Every report ends with an ALL_USERS row computed over the
union of all per-user ratings.`,
	Example: `  # Run with the key from the environment
  SUPABASE_ANON_KEY=... rating-report run --url https://xyz.supabase.co

  # Write reports (plus JSON Lines) into ./reports
  rating-report run -o ./reports --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		// 2. Overrides
		if urlOverride != "" {
			cfg.SupabaseURL = urlOverride
		}
		if keyOverride != "" {
			cfg.AnonKey = keyOverride
		}
		if outputOverride != "" {
			cfg.OutputDir = outputOverride
		}
		if jsonExport {
			cfg.ExportJSON = true
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		// 3. Execution
		return engine.Run(cfg)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&urlOverride, "url", "", "Supabase project URL (overrides config)")
	runCmd.Flags().StringVar(&keyOverride, "anon-key", "", "Supabase anon key (prefer SUPABASE_ANON_KEY)")
	runCmd.Flags().StringVarP(&outputOverride, "output-dir", "o", "", "Output directory for the CSV reports")
	runCmd.Flags().BoolVar(&jsonExport, "json", false, "Also export each report as JSON Lines")
}
