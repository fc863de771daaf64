package linescan

import "strings"

// Kind classifies one physical line of the content area.
type Kind int

const (
	// Blank is an empty or unrecognizably short line.
	Blank Kind = iota
	// Comment is a line starting with the comment marker; it never
	// produces an element and never participates in continuation.
	Comment
	// RecordHeader carries the record marker at the name-type column.
	RecordHeader
	// FieldLine has a non-blank name slice.
	FieldLine
	// ConstantLine has a blank name but positive row and column slices.
	ConstantLine
	// AttributeLine is any other line; it holds free-standing keyword
	// text, possibly empty.
	AttributeLine
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Comment:
		return "comment"
	case RecordHeader:
		return "record"
	case FieldLine:
		return "field"
	case ConstantLine:
		return "constant"
	case AttributeLine:
		return "attribute"
	default:
		return "unknown"
	}
}

// Kind classifies line i. Classification only inspects fixed columns; it
// does not resolve continuations or indicators.
func (s *Scanner) Kind(i int) Kind {
	content := s.Content(i)
	if strings.TrimSpace(content) == "" {
		return Blank
	}

	if content[commentCol] == commentMarker {
		return Comment
	}

	if s.at(i, nameTypeCol) == recordMarker {
		return RecordHeader
	}

	if s.Name(i) != "" {
		return FieldLine
	}

	if s.Row(i) > 0 && s.Col(i) > 0 {
		return ConstantLine
	}

	return AttributeLine
}
