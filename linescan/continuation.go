package linescan

import "strings"

// Continuation markers recognized as the last character of a trimmed
// functions-area run. Both mean "the value continues on the next line".
const (
	continuationMinus = '-'
	continuationPlus  = '+'
)

// endsInContinuation reports whether the trimmed run continues on the
// next line.
func endsInContinuation(run string) bool {
	if run == "" {
		return false
	}

	last := run[len(run)-1]

	return last == continuationMinus || last == continuationPlus
}

// ResolveFunctions assembles the functions-area text starting at line i,
// following trailing continuation markers across successive lines. Comment
// lines never participate and are skipped when advancing. It returns the
// assembled text, the index of the last physical line consumed, and
// whether a continuation marker was left dangling at end of document.
//
// A dangling marker is not an error: assembly simply stops with whatever
// was collected.
func (s *Scanner) ResolveFunctions(i int) (text string, lastLine int, unterminated bool) {
	var b strings.Builder

	lastLine = i
	run := s.Functions(i)

	for endsInContinuation(run) {
		b.WriteString(run[:len(run)-1])

		next := lastLine + 1
		for next < s.Len() && s.Kind(next) == Comment {
			next++
		}

		if next >= s.Len() {
			return b.String(), lastLine, true
		}

		lastLine = next
		run = s.Functions(next)
	}

	b.WriteString(run)

	return b.String(), lastLine, false
}
