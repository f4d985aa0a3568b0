/*
PURPOSE:
  Form 2 analysis: per-model scores from the model evaluation form.

REQUIREMENTS:
  User-specified:
  - Seven fixed model identifiers, reported in a fixed column order.
  - Scores from every dataset merge into one bucket per user/model.

  Implementation-discovered:
  - model_scores may contain keys outside the fixed set; they are
    ignored rather than rejected.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine.Run
  - Uses: internal/model, rating.go, report.go

ERROR HANDLING:
  - Malformed score values abort the pass with user and model attached.

USAGE:
  report, err := analyze.Form2(records)

RELATED FILES:
  - form1.go, form3.go

MAINTENANCE:
  - Update ModelKeys when the evaluated model lineup changes; column
    order here is the column order everywhere downstream.
*/

package analyze

import (
	"fmt"

	"github.com/evallab/rating-report/internal/model"
)

// ModelKeys is the fixed set of evaluated models, in report column order.
var ModelKeys = []string{
	"huatuo",
	"m1",
	"medreason",
	"qwen8b_zs",
	"qwen8b_nocot",
	"qwen8b_sft",
	"qwen8b_rl",
}

// Form2 aggregates model_evaluation answers: per-user mean score for
// each model, pooled across all datasets.
func Form2(records []model.Record) (*model.Report, error) {
	users := make(map[string]map[string][]int)

	bucket := func(userID string) map[string][]int {
		b := users[userID]
		if b == nil {
			b = make(map[string][]int)
			users[userID] = b
		}
		return b
	}

	for _, rec := range records {
		form := rec.Data.ModelEvaluation
		if form == nil {
			continue
		}

		for _, dataset := range form.Datasets {
			for _, answer := range dataset.Answers {
				for _, key := range ModelKeys {
					score, ok, err := ParseRating(answer.ModelScores[key])
					if err != nil {
						return nil, fmt.Errorf("user %s: model %s: %w", rec.UserID, key, err)
					}
					if ok {
						b := bucket(rec.UserID)
						b[key] = append(b[key], score)
					}
				}
			}
		}
	}

	columns := make([]string, 0, len(ModelKeys)+1)
	columns = append(columns, "user_id")
	for _, key := range ModelKeys {
		columns = append(columns, key+"_avg")
	}

	report := &model.Report{
		Name:    "form2",
		Title:   "Form 2 (Model Evaluation)",
		Columns: columns,
	}

	allScores := make(map[string][]int)

	for _, userID := range sortedUserIDs(users) {
		b := users[userID]
		values := make([]*float64, 0, len(ModelKeys))
		for _, key := range ModelKeys {
			values = append(values, roundMean(b[key]))
			allScores[key] = append(allScores[key], b[key]...)
		}
		report.Rows = append(report.Rows, model.Row{UserID: userID, Values: values})
	}

	summary := make([]*float64, 0, len(ModelKeys))
	for _, key := range ModelKeys {
		summary = append(summary, roundMean(allScores[key]))
	}
	report.Rows = append(report.Rows, model.Row{UserID: AllUsers, Values: summary})

	return report, nil
}
