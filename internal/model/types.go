/*
PURPOSE:
  Defines the core data structures used throughout rating-report.
  These models represent the raw Supabase ratings payload and the
  aggregated per-user report rows.

REQUIREMENTS:
  User-specified:
  - One record per submission; a user may have several records that
    must be merged during aggregation.
  - Each record carries a nested form payload keyed by form name
    (data_quality, model_evaluation, cot_evaluation).

  Implementation-discovered:
  - Rating fields in the payload are loosely typed (numbers sometimes
    arrive as strings), so they stay `any` until analyze parses them.
  - Aggregated output is column-oriented, so reports keep an explicit
    column list rather than relying on struct field order.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine, internal/analyze, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Form pointers are nil when the form is absent from a record;
    analyzers use that for their skip checks.

USAGE:
  rec := model.Record{UserID: "alice", ...}

RELATED FILES:
  - internal/analyze/form1.go
  - internal/output/csv.go

MAINTENANCE:
  - Update when the evaluation app adds a new form shape.
*/

package model

// Record is one respondent submission as stored in the ratings table.
type Record struct {
	UserID string   `json:"user_id"`
	Data   FormData `json:"data"`
}

// FormData is the nested form payload of a record. A nil form means the
// respondent never opened that form.
type FormData struct {
	DataQuality     *QualityForm   `json:"data_quality"`
	ModelEvaluation *ModelEvalForm `json:"model_evaluation"`
	CotEvaluation   *CotForm       `json:"cot_evaluation"`
}

// QualityForm holds Form 1 answers keyed by case id.
type QualityForm struct {
	Answers map[string]QualityAnswer `json:"answers"`
}

// QualityAnswer is a single Form 1 answer. Rating fields are loosely
// typed in the payload and parsed by internal/analyze.
type QualityAnswer struct {
	SystemHardness any `json:"system_hardness"`
	Hardness       any `json:"hardness"`
	CotQuality     any `json:"cot_quality"`
}

// ModelEvalForm holds Form 2 answers grouped by dataset.
type ModelEvalForm struct {
	Datasets map[string]Dataset `json:"datasets"`
}

// Dataset is one dataset block inside the model evaluation form.
type Dataset struct {
	Answers map[string]ModelAnswer `json:"answers"`
}

// ModelAnswer maps model identifiers to the respondent's score.
type ModelAnswer struct {
	ModelScores map[string]any `json:"model_scores"`
}

// CotForm holds Form 3 answers keyed by case id.
type CotForm struct {
	Answers map[string]CotAnswer `json:"answers"`
}

// CotAnswer is a single Form 3 answer.
type CotAnswer struct {
	Quality any `json:"quality"`
}

// Report is the aggregated output of one analyzer: a fixed column order
// plus one row per user and a trailing ALL_USERS summary row.
type Report struct {
	// Name is the short identifier used in output file names (form1, ...).
	Name string
	// Title is the human heading printed above the console table.
	Title string
	// Columns includes the leading "user_id" column.
	Columns []string
	Rows    []Row
}

// Row is one aggregate row. Values holds one entry per numeric column
// (Columns[1:]); nil means no qualifying rating was counted.
type Row struct {
	UserID string
	Values []*float64
}
