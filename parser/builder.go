package parser

import (
	"fmt"
	"strings"

	"github.com/christianlarsen/dspf-edit/linescan"
)

// builder walks the classified lines once and produces the flat,
// source-ordered element list. It keeps a running view of the currently
// open record so the subfile flag is knowable the moment a field or
// constant under it is parsed, before global ownership linking runs.
type builder struct {
	scanner  *linescan.Scanner
	elements []Element
	records  []*Record
	findings []Finding

	current         *Record
	currentKeywords []string
	positionedSeen  bool
}

func newBuilder(scanner *linescan.Scanner) *builder {
	file := &File{}

	return &builder{
		scanner:  scanner,
		elements: []Element{file},
	}
}

// run consumes every line and returns the element list, File first.
func (b *builder) run() []Element {
	for i := 0; i < b.scanner.Len(); i++ {
		switch b.scanner.Kind(i) {
		case linescan.Blank, linescan.Comment:
			// skipped entirely
		case linescan.RecordHeader:
			i = b.buildRecord(i)
		case linescan.FieldLine:
			i = b.buildField(i)
		case linescan.ConstantLine:
			i = b.buildConstant(i)
		case linescan.AttributeLine:
			i = b.buildAttribute(i)
		}
	}

	return b.elements
}

func (b *builder) buildRecord(i int) int {
	text, last, unterminated := b.scanner.ResolveFunctions(i)
	b.noteUnterminated(unterminated, last)

	record := &Record{
		Name:      b.scanner.Name(i),
		StartLine: i,
		EndLine:   i,
	}

	values := splitKeywords(text)
	record.Attributes = attributeSpecs(values, b.scanner.Indicators(i))

	b.elements = append(b.elements, record)
	b.records = append(b.records, record)
	b.current = record
	b.currentKeywords = append([]string(nil), values...)
	b.positionedSeen = false

	return last
}

func (b *builder) buildField(i int) int {
	text, last, unterminated := b.scanner.ResolveFunctions(i)
	b.noteUnterminated(unterminated, last)

	usage := Usage(b.scanner.Usage(i))

	field := &Field{
		Name:       b.scanner.Name(i),
		Type:       b.scanner.TypeChar(i),
		Length:     b.scanner.Length(i),
		Decimals:   b.scanner.Decimals(i),
		Usage:      usage,
		Referenced: b.scanner.Referenced(i),
		RecordName: b.currentRecordName(),
		LineNo:     i,
		Indicators: b.scanner.Indicators(i),
		Attributes: attributeSpecs(splitKeywords(text), b.scanner.Indicators(i)),
	}

	if !usage.Hidden() {
		field.Row, field.Col = b.finalCoordinates(b.scanner.Row(i), b.scanner.Col(i))
	}

	b.elements = append(b.elements, field)
	b.positionedSeen = true

	return last
}

func (b *builder) buildConstant(i int) int {
	text, last, unterminated := b.scanner.ResolveFunctions(i)
	b.noteUnterminated(unterminated, last)

	row, col := b.finalCoordinates(b.scanner.Row(i), b.scanner.Col(i))
	literal, rest := splitConstant(text)

	constant := &Constant{
		Name:       literal,
		Row:        row,
		Col:        col,
		RecordName: b.currentRecordName(),
		LineNo:     i,
		LastLine:   last,
		Indicators: b.scanner.Indicators(i),
		Attributes: attributeSpecs(splitKeywords(rest), b.scanner.Indicators(i)),
	}

	b.elements = append(b.elements, constant)
	b.positionedSeen = true

	return last
}

func (b *builder) buildAttribute(i int) int {
	text, last, unterminated := b.scanner.ResolveFunctions(i)
	b.noteUnterminated(unterminated, last)

	if text == "" {
		// structurally empty line, drop it
		return last
	}

	attribute := &Attribute{
		Value:      text,
		LineNo:     i,
		LastLine:   last,
		Indicators: b.scanner.Indicators(i),
	}

	b.elements = append(b.elements, attribute)

	// Keyword lines between a record header and its first positioned
	// element belong to the record; fold them into the running keyword
	// view so a trailing subfile marker is seen before any field.
	if b.current != nil && !b.positionedSeen {
		b.currentKeywords = append(b.currentKeywords, splitKeywords(text)...)
	}

	return last
}

// finalCoordinates applies the subfile quirk: inside a subfile record the
// raw row slice is semantically the column and vice versa.
func (b *builder) finalCoordinates(rawRow, rawCol int) (row, col int) {
	if b.currentIsSubfile() {
		return rawCol, rawRow
	}

	return rawRow, rawCol
}

func (b *builder) currentIsSubfile() bool {
	for _, keyword := range b.currentKeywords {
		if keyword == subfileKeyword {
			return true
		}
	}

	return false
}

func (b *builder) currentRecordName() string {
	if b.current == nil {
		return ""
	}

	return b.current.Name
}

func (b *builder) noteUnterminated(unterminated bool, line int) {
	if !unterminated {
		return
	}

	b.findings = append(b.findings, Finding{
		Kind:    FindingUnterminatedContinuation,
		LineNo:  line,
		Message: fmt.Sprintf("continuation marker on line %d is never terminated", line+1),
	})
}

// attributeSpecs pairs each keyword value with the indicators of the line
// it was read from.
func attributeSpecs(values []string, indicators []linescan.Indicator) []AttributeSpec {
	if len(values) == 0 {
		return nil
	}

	specs := make([]AttributeSpec, 0, len(values))
	for _, value := range values {
		specs = append(specs, AttributeSpec{Value: value, Indicators: indicators})
	}

	return specs
}

// splitConstant separates a constant's quoted literal from trailing
// keyword text on the same run. Doubled quotes inside the literal do not
// close it. Text not starting with a quote, and an unclosed literal, are
// the literal in full.
func splitConstant(text string) (literal, rest string) {
	if len(text) == 0 || text[0] != '\'' {
		return text, ""
	}

	for i := 1; i < len(text); i++ {
		if text[i] != '\'' {
			continue
		}

		if i+1 < len(text) && text[i+1] == '\'' {
			i++
			continue
		}

		return text[:i+1], strings.TrimSpace(text[i+1:])
	}

	return text, ""
}

// splitKeywords splits assembled functions-area text into individual
// keyword values. Whitespace inside parentheses or quoted literals does
// not split, so DSPSIZ(24 80 *DS3) stays one value.
func splitKeywords(text string) []string {
	var (
		out     []string
		start   = -1
		depth   = 0
		inQuote = false
	)

	flush := func(end int) {
		if start >= 0 && end > start {
			out = append(out, text[start:end])
		}

		start = -1
	}

	for i := 0; i < len(text); i++ {
		ch := text[i]

		switch {
		case ch == '\'':
			inQuote = !inQuote
		case inQuote:
		case ch == '(':
			depth++
		case ch == ')':
			if depth > 0 {
				depth--
			}
		case ch == ' ' && depth == 0:
			flush(i)
			continue
		}

		if start < 0 {
			start = i
		}
	}

	flush(len(text))

	return out
}
