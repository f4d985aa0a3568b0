/*
PURPOSE:
  Form 1 analysis: hardness ratings (user vs system) and CoT quality.

REQUIREMENTS:
  User-specified:
  - Bucket each user hardness rating under the system-assigned level
    (1-4) of the same case; independently collect cot_quality.
  - One output row per user plus the ALL_USERS union row.

  Implementation-discovered:
  - A user enters the output only once at least one rating qualified;
    a record whose answers are all unrated leaves no row behind.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine.Run
  - Uses: internal/model, rating.go, report.go

ERROR HANDLING:
  - Malformed rating values abort the pass with the user id attached.

USAGE:
  report, err := analyze.Form1(records)

RELATED FILES:
  - form2.go, form3.go (same pass structure)

MAINTENANCE:
  - Update hardnessLevels if the app adds a fifth level.
*/

package analyze

import (
	"fmt"

	"github.com/evallab/rating-report/internal/model"
)

var form1Columns = []string{
	"user_id",
	"hardness_1_avg",
	"hardness_2_avg",
	"hardness_3_avg",
	"hardness_4_avg",
	"cot_quality_avg",
}

var hardnessLevels = []string{"1", "2", "3", "4"}

type form1Bucket struct {
	hardness map[string][]int
	cot      []int
}

// Form1 aggregates data_quality answers: per-user mean hardness rating
// grouped by the system-assigned hardness level, plus mean CoT quality.
func Form1(records []model.Record) (*model.Report, error) {
	users := make(map[string]*form1Bucket)

	bucket := func(userID string) *form1Bucket {
		b := users[userID]
		if b == nil {
			b = &form1Bucket{hardness: make(map[string][]int)}
			users[userID] = b
		}
		return b
	}

	for _, rec := range records {
		form := rec.Data.DataQuality
		if form == nil {
			continue
		}

		for _, answer := range form.Answers {
			level := hardnessKey(answer.SystemHardness)

			rating, ok, err := ParseRating(answer.Hardness)
			if err != nil {
				return nil, fmt.Errorf("user %s: hardness: %w", rec.UserID, err)
			}
			if ok && validLevel(level) {
				b := bucket(rec.UserID)
				b.hardness[level] = append(b.hardness[level], rating)
			}

			cot, ok, err := ParseRating(answer.CotQuality)
			if err != nil {
				return nil, fmt.Errorf("user %s: cot_quality: %w", rec.UserID, err)
			}
			if ok {
				b := bucket(rec.UserID)
				b.cot = append(b.cot, cot)
			}
		}
	}

	report := &model.Report{
		Name:    "form1",
		Title:   "Form 1 (Data Quality Assessment)",
		Columns: form1Columns,
	}

	allHardness := make(map[string][]int)
	var allCot []int

	for _, userID := range sortedUserIDs(users) {
		b := users[userID]
		values := make([]*float64, 0, len(form1Columns)-1)
		for _, level := range hardnessLevels {
			values = append(values, roundMean(b.hardness[level]))
			allHardness[level] = append(allHardness[level], b.hardness[level]...)
		}
		values = append(values, roundMean(b.cot))
		allCot = append(allCot, b.cot...)
		report.Rows = append(report.Rows, model.Row{UserID: userID, Values: values})
	}

	summary := make([]*float64, 0, len(form1Columns)-1)
	for _, level := range hardnessLevels {
		summary = append(summary, roundMean(allHardness[level]))
	}
	summary = append(summary, roundMean(allCot))
	report.Rows = append(report.Rows, model.Row{UserID: AllUsers, Values: summary})

	return report, nil
}

func validLevel(level string) bool {
	for _, l := range hardnessLevels {
		if level == l {
			return true
		}
	}
	return false
}
