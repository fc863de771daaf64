package parser

import (
	"fmt"
	"strings"
)

// ddsLine builds one physical source line: a 6-character sequence area
// followed by text placed at the given content-area offsets.
func ddsLine(placements map[int]string) string {
	buf := make([]byte, 74)
	for i := range buf {
		buf[i] = ' '
	}

	for offset, text := range placements {
		copy(buf[offset:], text)
	}

	return "      " + strings.TrimRight(string(buf), " ")
}

func recordLine(name, keywords string) string {
	p := map[int]string{10: "R", 12: name}
	if keywords != "" {
		p[38] = keywords
	}

	return ddsLine(p)
}

func fieldLine(indicators, name string, length int, usage byte, row, col int, keywords string) string {
	p := map[int]string{
		1:  indicators,
		12: name,
		23: fmt.Sprintf("%5d", length),
		31: string(usage),
	}

	if row > 0 {
		p[32] = fmt.Sprintf("%3d", row)
	}

	if col > 0 {
		p[35] = fmt.Sprintf("%3d", col)
	}

	if keywords != "" {
		p[38] = keywords
	}

	return ddsLine(p)
}

func constantLine(row, col int, text string) string {
	return ddsLine(map[int]string{
		32: fmt.Sprintf("%3d", row),
		35: fmt.Sprintf("%3d", col),
		38: text,
	})
}

func attrLine(keywords string) string {
	return ddsLine(map[int]string{38: keywords})
}

func commentLine(text string) string {
	return ddsLine(map[int]string{0: "* " + text})
}

func document(lines ...string) string {
	return strings.Join(lines, "\n")
}
