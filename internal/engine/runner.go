/*
PURPOSE:
  High-level runner that orchestrates the analysis pipeline.
  Fetch ratings -> three aggregation passes -> CSV/console reports.

REQUIREMENTS:
  User-specified:
  - All three output files share one timestamp taken at run start.
  - Empty dataset warns and writes nothing.
  - A failing pass aborts the rest; files already written stay on disk.

  Implementation-discovered:
  - A per-run id in the log fields makes interleaved scrollback from
    repeated runs greppable.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/engine (Client), internal/analyze, internal/output

ERROR HANDLING:
  - No local recovery; every error propagates to the CLI with context.

IMPLEMENTATION RULES:
  - Forms run sequentially over the same immutable record list.
  - Write CSV (and optional JSONL) before printing the table, so the
    files exist even if stdout is redirected somewhere that breaks.

USAGE:
  err := engine.Run(cfg)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/client.go
  - internal/analyze/form1.go

MAINTENANCE:
  - Register new forms in the forms table below.
*/

package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/evallab/rating-report/internal/analyze"
	"github.com/evallab/rating-report/internal/config"
	"github.com/evallab/rating-report/internal/model"
	"github.com/evallab/rating-report/internal/output"
)

const timestampLayout = "20060102_150405"

// Run executes the full analysis pipeline.
func Run(cfg *config.Config) error {
	logger := output.Logger.With(zap.String("run_id", uuid.NewString()))

	c := New(cfg)
	ctx := context.Background()

	logger.Info("Fetching ratings from Supabase", zap.String("url", cfg.SupabaseURL))
	records, err := c.FetchRatings(ctx)
	if err != nil {
		return err
	}
	logger.Info("Retrieved ratings", zap.Int("records", len(records)))

	if len(records) == 0 {
		logger.Warn("No ratings found; ensure users have submitted evaluations")
		return nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	// One timestamp for the whole run so the three files sort together.
	timestamp := time.Now().Format(timestampLayout)

	forms := []struct {
		name    string
		analyze func([]model.Record) (*model.Report, error)
	}{
		{"form1", analyze.Form1},
		{"form2", analyze.Form2},
		{"form3", analyze.Form3},
	}

	var generated []string
	for _, form := range forms {
		logger.Info("Analyzing", zap.String("form", form.name))

		report, err := form.analyze(records)
		if err != nil {
			return fmt.Errorf("%s analysis failed: %w", form.name, err)
		}

		csvPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_analysis_%s.csv", form.name, timestamp))
		if err := writeCSV(csvPath, report); err != nil {
			return fmt.Errorf("failed to export %s: %w", csvPath, err)
		}
		logger.Info("Exported", zap.String("file", csvPath))
		generated = append(generated, csvPath)

		if cfg.ExportJSON {
			jsonPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_analysis_%s.jsonl", form.name, timestamp))
			if err := writeJSON(jsonPath, report); err != nil {
				return fmt.Errorf("failed to export %s: %w", jsonPath, err)
			}
			logger.Info("Exported", zap.String("file", jsonPath))
			generated = append(generated, jsonPath)
		}

		output.PrintTable(os.Stdout, report)
	}

	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("Analysis complete!")
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("\nGenerated files:")
	for _, path := range generated {
		fmt.Printf("   - %s\n", path)
	}
	fmt.Println("\nEach file includes per-user rows plus an 'ALL_USERS' summary row")

	return nil
}

func writeCSV(path string, report *model.Report) error {
	w, err := output.NewCSVWriter(path, report.Columns)
	if err != nil {
		return err
	}
	defer w.Close()

	for _, row := range report.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(path string, report *model.Report) error {
	w, err := output.NewJSONWriter(path, report.Columns)
	if err != nil {
		return err
	}
	defer w.Close()

	for _, row := range report.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
