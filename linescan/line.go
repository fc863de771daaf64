// Package linescan provides low-level access to fixed-column DDS display
// source lines: classification, conditioning-indicator decoding, and
// continuation resolution. It is pure and stateless; the parser package
// builds the element tree on top of it.
package linescan

import (
	"strings"
)

// Column offsets within the content area, 0-based, after the leading
// sequence/form-type region has been stripped.
const (
	commentCol     = 0
	indicatorStart = 1
	indicatorEnd   = 10
	nameTypeCol    = 10
	nameStart      = 12
	nameEnd        = 22
	refCol         = 22
	lengthStart    = 23
	lengthEnd      = 28
	typeCol        = 28
	decStart       = 29
	decEnd         = 31
	usageCol       = 31
	rowStart       = 32
	rowEnd         = 35
	colStart       = 35
	colEnd         = 38
	funcStart      = 38
	funcEnd        = 74
)

// Marker characters with fixed meaning in the format.
const (
	commentMarker  = '*'
	recordMarker   = 'R'
	negationMarker = 'N'
	referenceMark  = 'R'
)

// DefaultSequenceAreaWidth is the width of the leading sequence-number and
// form-type region reserved on every line of a standard source member.
const DefaultSequenceAreaWidth = 6

// Options configure a Scanner.
type Options struct {
	// SequenceAreaWidth is the number of leading characters to strip from
	// every line before applying the fixed column offsets.
	SequenceAreaWidth int
}

// Scanner exposes the fixed-column slices of one document. All accessors
// tolerate lines shorter than the requested slice; out-of-range access
// yields blank values rather than panicking.
type Scanner struct {
	lines    []string
	seqWidth int
}

// NewScanner splits the document text into lines (either line-ending
// convention) and prepares fixed-column access.
func NewScanner(text string, options ...Options) *Scanner {
	opts := Options{SequenceAreaWidth: DefaultSequenceAreaWidth}
	if len(options) > 0 {
		opts = options[0]
		if opts.SequenceAreaWidth < 0 {
			opts.SequenceAreaWidth = DefaultSequenceAreaWidth
		}
	}

	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	return &Scanner{
		lines:    strings.Split(normalized, "\n"),
		seqWidth: opts.SequenceAreaWidth,
	}
}

// Len returns the number of physical lines in the document.
func (s *Scanner) Len() int {
	return len(s.lines)
}

// Content returns the content area of line i (the line with the sequence
// region stripped), or "" when i is out of range.
func (s *Scanner) Content(i int) string {
	if i < 0 || i >= len(s.lines) {
		return ""
	}

	line := s.lines[i]
	if len(line) <= s.seqWidth {
		return ""
	}

	return line[s.seqWidth:]
}

// slice returns content[from:to] padded semantics: characters beyond the
// end of the line read as blank.
func (s *Scanner) slice(i, from, to int) string {
	c := s.Content(i)
	if from >= len(c) {
		return ""
	}

	if to > len(c) {
		to = len(c)
	}

	return c[from:to]
}

// at returns the character at content offset col, or ' ' when absent.
func (s *Scanner) at(i, col int) byte {
	c := s.Content(i)
	if col >= len(c) {
		return ' '
	}

	return c[col]
}

// Name returns the trimmed name slice of line i.
func (s *Scanner) Name(i int) string {
	return strings.TrimSpace(s.slice(i, nameStart, nameEnd))
}

// TypeChar returns the data-type character of line i (blank when absent).
func (s *Scanner) TypeChar(i int) byte {
	return s.at(i, typeCol)
}

// Length returns the numeric length slice of line i, 0 when blank or
// malformed.
func (s *Scanner) Length(i int) int {
	return parseNumber(s.slice(i, lengthStart, lengthEnd))
}

// Decimals returns the decimal-positions slice of line i, 0 when blank.
func (s *Scanner) Decimals(i int) int {
	return parseNumber(s.slice(i, decStart, decEnd))
}

// Usage returns the usage flag character of line i.
func (s *Scanner) Usage(i int) byte {
	return s.at(i, usageCol)
}

// Referenced reports whether line i carries the reference flag.
func (s *Scanner) Referenced(i int) bool {
	return s.at(i, refCol) == referenceMark
}

// Row returns the row slice of line i as a number, 0 when blank or
// malformed.
func (s *Scanner) Row(i int) int {
	return parseNumber(s.slice(i, rowStart, rowEnd))
}

// Col returns the column slice of line i as a number, 0 when blank or
// malformed.
func (s *Scanner) Col(i int) int {
	return parseNumber(s.slice(i, colStart, colEnd))
}

// Functions returns the functions-area run of line i trimmed of trailing
// padding, without following continuations.
func (s *Scanner) Functions(i int) string {
	return strings.TrimRight(s.slice(i, funcStart, funcEnd), " ")
}

// parseNumber converts a blank-padded numeric slice to an int. Blank or
// non-numeric slices yield 0; malformed input never raises.
func parseNumber(slice string) int {
	trimmed := strings.TrimSpace(slice)
	if trimmed == "" {
		return 0
	}

	n := 0

	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return 0
		}

		n = n*10 + int(r-'0')
	}

	return n
}
