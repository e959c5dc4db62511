package domain

// Report collects violations per category for one lint run
type Report struct {
	Orphaned       []string
	MissingSuffix  []string
	MissingNewline []string
}

// Failed reports whether any category has violations
func (r Report) Failed() bool {
	return len(r.Orphaned) > 0 || len(r.MissingSuffix) > 0 || len(r.MissingNewline) > 0
}

// Paths returns the violating paths for a category
func (r Report) Paths(c Category) []string {
	switch c {
	case OrphanedOutput:
		return r.Orphaned
	case MissingFailSuffix:
		return r.MissingSuffix
	case MissingTrailingNewline:
		return r.MissingNewline
	}
	return nil
}

// Failures flattens the report into individual records in category order
func (r Report) Failures() []Failure {
	var out []Failure
	for _, c := range Categories {
		for _, p := range r.Paths(c) {
			out = append(out, Failure{Category: c, Path: p})
		}
	}
	return out
}

// ReportMeta describes the run that produced a saved report
type ReportMeta struct {
	InputDir         string  `json:"input_dir"`
	ExpectedDir      string  `json:"expected_dir"`
	InputFixtures    int     `json:"input_fixtures"`
	ExpectedFixtures int     `json:"expected_fixtures"`
	Violations       int     `json:"violations"`
	Duration         string  `json:"duration"`
	DurationSeconds  float64 `json:"duration_seconds"`
	Timestamp        string  `json:"timestamp"`
}

// ReportOutput is the persisted form of a lint run
type ReportOutput struct {
	Meta    ReportMeta `json:"meta"`
	Details []Failure  `json:"details"`
}

// Report rebuilds the per-category report from the saved details
func (o ReportOutput) Report() Report {
	var r Report
	for _, f := range o.Details {
		switch f.Category {
		case OrphanedOutput:
			r.Orphaned = append(r.Orphaned, f.Path)
		case MissingFailSuffix:
			r.MissingSuffix = append(r.MissingSuffix, f.Path)
		case MissingTrailingNewline:
			r.MissingNewline = append(r.MissingNewline, f.Path)
		}
	}
	return r
}
