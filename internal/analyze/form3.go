/*
PURPOSE:
  Form 3 analysis: standalone CoT quality ratings.

REQUIREMENTS:
  User-specified:
  - Single numeric column (cot_quality_avg) per user plus ALL_USERS.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine.Run
  - Uses: internal/model, rating.go, report.go

ERROR HANDLING:
  - Malformed quality values abort the pass with the user id attached.

USAGE:
  report, err := analyze.Form3(records)

RELATED FILES:
  - form1.go, form2.go

MAINTENANCE:
  - None expected; this is the simplest of the three passes.
*/

package analyze

import (
	"fmt"

	"github.com/evallab/rating-report/internal/model"
)

var form3Columns = []string{"user_id", "cot_quality_avg"}

// Form3 aggregates cot_evaluation answers into a per-user mean quality.
func Form3(records []model.Record) (*model.Report, error) {
	users := make(map[string][]int)

	for _, rec := range records {
		form := rec.Data.CotEvaluation
		if form == nil {
			continue
		}

		for _, answer := range form.Answers {
			quality, ok, err := ParseRating(answer.Quality)
			if err != nil {
				return nil, fmt.Errorf("user %s: quality: %w", rec.UserID, err)
			}
			if ok {
				users[rec.UserID] = append(users[rec.UserID], quality)
			}
		}
	}

	report := &model.Report{
		Name:    "form3",
		Title:   "Form 3 (CoT Quality Evaluation)",
		Columns: form3Columns,
	}

	var allQuality []int
	for _, userID := range sortedUserIDs(users) {
		report.Rows = append(report.Rows, model.Row{
			UserID: userID,
			Values: []*float64{roundMean(users[userID])},
		})
		allQuality = append(allQuality, users[userID]...)
	}

	report.Rows = append(report.Rows, model.Row{
		UserID: AllUsers,
		Values: []*float64{roundMean(allQuality)},
	})

	return report, nil
}
