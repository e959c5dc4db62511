package domain

// Category is the kind of lint violation
type Category string

const (
	OrphanedOutput         Category = "orphaned_output"
	MissingFailSuffix      Category = "missing_fail_suffix"
	MissingTrailingNewline Category = "missing_trailing_newline"
)

// Categories lists every category in report order
var Categories = []Category{OrphanedOutput, MissingFailSuffix, MissingTrailingNewline}

// Failure is a single violation of the fixture conventions
type Failure struct {
	Category Category `json:"category"`
	Path     string   `json:"path"`
	Resolved bool     `json:"resolved,omitempty"` // Marked in the report viewer
}
