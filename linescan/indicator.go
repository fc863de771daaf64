package linescan

import (
	"sort"
	"strings"
)

// Indicator is a numbered boolean condition (1-99) attached to a line.
// Active is false when the slot carries the negation marker.
type Indicator struct {
	Number int
	Active bool
}

const (
	indicatorSlots    = 3
	indicatorSlotSize = 3
)

// DecodeIndicators decodes the three 3-character conditioning-indicator
// slots of a 9-character slice. A slot with no digits is skipped. The
// result is sorted ascending by number and holds at most three entries.
func DecodeIndicators(slice string) []Indicator {
	var out []Indicator

	for slot := 0; slot < indicatorSlots; slot++ {
		start := slot * indicatorSlotSize
		if start >= len(slice) {
			break
		}

		end := start + indicatorSlotSize
		if end > len(slice) {
			end = len(slice)
		}

		if ind, ok := decodeSlot(slice[start:end]); ok {
			out = append(out, ind)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })

	return out
}

// decodeSlot decodes one 3-character slot: negation flag, then a two
// character blank- or zero-padded number.
func decodeSlot(slot string) (Indicator, bool) {
	if len(slot) < 2 {
		return Indicator{}, false
	}

	digits := strings.TrimSpace(slot[1:])
	if digits == "" {
		return Indicator{}, false
	}

	number := parseNumber(digits)
	if number < 1 || number > 99 {
		return Indicator{}, false
	}

	return Indicator{
		Number: number,
		Active: slot[0] != negationMarker,
	}, true
}

// Indicators decodes the conditioning indicators of line i.
func (s *Scanner) Indicators(i int) []Indicator {
	return DecodeIndicators(s.slice(i, indicatorStart, indicatorEnd))
}
