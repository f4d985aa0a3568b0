package analyze

import (
	"testing"

	"github.com/evallab/rating-report/internal/model"
)

func qualityRecord(user string, answers map[string]model.QualityAnswer) model.Record {
	return model.Record{
		UserID: user,
		Data: model.FormData{
			DataQuality: &model.QualityForm{Answers: answers},
		},
	}
}

func wantCell(t *testing.T, got *float64, want float64) {
	t.Helper()
	if got == nil {
		t.Fatalf("expected %.2f, got null", want)
	}
	if *got != want {
		t.Fatalf("expected %.2f, got %.2f", want, *got)
	}
}

func wantNull(t *testing.T, got *float64) {
	t.Helper()
	if got != nil {
		t.Fatalf("expected null, got %.2f", *got)
	}
}

func TestForm1_TwoUsers(t *testing.T) {
	records := []model.Record{
		qualityRecord("alice", map[string]model.QualityAnswer{
			"c1": {SystemHardness: float64(1), Hardness: float64(3), CotQuality: float64(4)},
		}),
		qualityRecord("bob", map[string]model.QualityAnswer{
			"c2": {SystemHardness: float64(1), Hardness: float64(5)},
		}),
	}

	report, err := Form1(records)
	if err != nil {
		t.Fatalf("Form1 error: %v", err)
	}
	if len(report.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(report.Rows))
	}

	alice, bob, all := report.Rows[0], report.Rows[1], report.Rows[2]
	if alice.UserID != "alice" || bob.UserID != "bob" || all.UserID != AllUsers {
		t.Fatalf("unexpected row order: %s, %s, %s", alice.UserID, bob.UserID, all.UserID)
	}

	wantCell(t, alice.Values[0], 3.00)
	wantCell(t, alice.Values[4], 4.00)
	wantCell(t, bob.Values[0], 5.00)
	wantNull(t, bob.Values[4])
	wantCell(t, all.Values[0], 4.00)
	wantCell(t, all.Values[4], 4.00)
	for _, row := range []model.Row{alice, bob, all} {
		for _, level := range []int{1, 2, 3} {
			wantNull(t, row.Values[level])
		}
	}
}

func TestForm1_AllUsersIsUnionMean(t *testing.T) {
	// a contributes one value, b three; the ALL_USERS mean must weight
	// every value equally, not every user.
	records := []model.Record{
		qualityRecord("a", map[string]model.QualityAnswer{
			"c1": {SystemHardness: float64(2), Hardness: float64(1)},
		}),
		qualityRecord("b", map[string]model.QualityAnswer{
			"c2": {SystemHardness: float64(2), Hardness: float64(2)},
			"c3": {SystemHardness: float64(2), Hardness: float64(2)},
			"c4": {SystemHardness: float64(2), Hardness: float64(2)},
		}),
	}

	report, err := Form1(records)
	if err != nil {
		t.Fatalf("Form1 error: %v", err)
	}
	all := report.Rows[len(report.Rows)-1]
	wantCell(t, all.Values[1], 1.75)
}

func TestForm1_MultipleRecordsPerUserMerge(t *testing.T) {
	records := []model.Record{
		qualityRecord("alice", map[string]model.QualityAnswer{
			"c1": {SystemHardness: float64(3), Hardness: float64(2)},
		}),
		qualityRecord("alice", map[string]model.QualityAnswer{
			"c2": {SystemHardness: float64(3), Hardness: float64(4)},
		}),
	}

	report, err := Form1(records)
	if err != nil {
		t.Fatalf("Form1 error: %v", err)
	}
	if len(report.Rows) != 2 {
		t.Fatalf("expected one user row plus summary, got %d rows", len(report.Rows))
	}
	wantCell(t, report.Rows[0].Values[2], 3.00)
}

func TestForm1_SkipsRecordsWithoutForm(t *testing.T) {
	records := []model.Record{
		{UserID: "ghost"}, // no data_quality form at all
		qualityRecord("alice", map[string]model.QualityAnswer{
			"c1": {SystemHardness: float64(1), Hardness: float64(2)},
		}),
	}

	report, err := Form1(records)
	if err != nil {
		t.Fatalf("Form1 error: %v", err)
	}
	if len(report.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(report.Rows))
	}
	if report.Rows[0].UserID != "alice" {
		t.Fatalf("expected alice first, got %s", report.Rows[0].UserID)
	}
}

func TestForm1_InvalidLevelStillCountsCot(t *testing.T) {
	records := []model.Record{
		qualityRecord("alice", map[string]model.QualityAnswer{
			"c1": {SystemHardness: float64(5), Hardness: float64(3), CotQuality: float64(2)},
		}),
	}

	report, err := Form1(records)
	if err != nil {
		t.Fatalf("Form1 error: %v", err)
	}
	alice := report.Rows[0]
	for i := 0; i < 4; i++ {
		wantNull(t, alice.Values[i])
	}
	wantCell(t, alice.Values[4], 2.00)
}

func TestForm1_UnratedAnswersLeaveNoRow(t *testing.T) {
	records := []model.Record{
		qualityRecord("alice", map[string]model.QualityAnswer{
			"c1": {SystemHardness: float64(1)},
		}),
	}

	report, err := Form1(records)
	if err != nil {
		t.Fatalf("Form1 error: %v", err)
	}
	if len(report.Rows) != 1 || report.Rows[0].UserID != AllUsers {
		t.Fatalf("expected only the summary row, got %d rows", len(report.Rows))
	}
}

func TestForm1_RowsSortedWithSummaryLast(t *testing.T) {
	records := []model.Record{
		qualityRecord("zoe", map[string]model.QualityAnswer{
			"c1": {SystemHardness: float64(1), Hardness: float64(2)},
		}),
		qualityRecord("amy", map[string]model.QualityAnswer{
			"c2": {SystemHardness: float64(1), Hardness: float64(4)},
		}),
	}

	report, err := Form1(records)
	if err != nil {
		t.Fatalf("Form1 error: %v", err)
	}
	got := []string{report.Rows[0].UserID, report.Rows[1].UserID, report.Rows[2].UserID}
	want := []string{"amy", "zoe", AllUsers}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row order %v, want %v", got, want)
		}
	}
}

func TestForm1_MalformedRatingFails(t *testing.T) {
	records := []model.Record{
		qualityRecord("alice", map[string]model.QualityAnswer{
			"c1": {SystemHardness: float64(1), Hardness: "not a number"},
		}),
	}

	if _, err := Form1(records); err == nil {
		t.Fatal("expected error for malformed hardness rating")
	}
}
