package parser

// FindingKind classifies a structural finding reported by the parse.
// Findings are informational: none of them aborts or degrades the parse
// beyond what the recovery rules already do.
type FindingKind int

const (
	// FindingDuplicateName marks a field or constant whose name already
	// appeared under the same record; the later occurrence is suppressed
	// from the mirror.
	FindingDuplicateName FindingKind = iota
	// FindingUnterminatedContinuation marks a continuation marker on the
	// last line of the document.
	FindingUnterminatedContinuation
	// FindingEmptyRecord marks a record with no fields and no constants.
	FindingEmptyRecord
)

// String returns the string representation of FindingKind.
func (k FindingKind) String() string {
	switch k {
	case FindingDuplicateName:
		return "duplicate-name"
	case FindingUnterminatedContinuation:
		return "unterminated-continuation"
	case FindingEmptyRecord:
		return "empty-record"
	default:
		return "unknown"
	}
}

// Finding is one structural observation, anchored to a source line.
type Finding struct {
	Kind    FindingKind
	LineNo  int
	Message string
}
