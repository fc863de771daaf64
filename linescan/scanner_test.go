package linescan

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

// content builds one physical line: the 6-character sequence area plus
// text placed at the given content-area offsets.
func content(placements map[int]string) string {
	buf := make([]byte, 74)
	for i := range buf {
		buf[i] = ' '
	}

	for offset, text := range placements {
		copy(buf[offset:], text)
	}

	return "      " + strings.TrimRight(string(buf), " ")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Kind
	}{
		{
			name: "blank line",
			line: "",
			want: Blank,
		},
		{
			name: "sequence area only",
			line: "000100",
			want: Blank,
		},
		{
			name: "comment",
			line: content(map[int]string{0: "* customer panel"}),
			want: Comment,
		},
		{
			name: "record header",
			line: content(map[int]string{10: "R", 12: "CUSTPNL"}),
			want: RecordHeader,
		},
		{
			name: "field",
			line: content(map[int]string{12: "CUSTNAME", 23: "   30", 31: "I", 32: "  5", 35: " 10"}),
			want: FieldLine,
		},
		{
			name: "constant",
			line: content(map[int]string{32: "  2", 35: " 30", 38: "'Customer maintenance'"}),
			want: ConstantLine,
		},
		{
			name: "keyword line",
			line: content(map[int]string{38: "CA03(03 'Exit')"}),
			want: AttributeLine,
		},
		{
			name: "row without column falls through to attribute",
			line: content(map[int]string{32: "  2"}),
			want: AttributeLine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner(tt.line)
			assert.Equal(t, tt.want, s.Kind(0))
		})
	}
}

func TestShortLinesDoNotPanic(t *testing.T) {
	s := NewScanner("      R")

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "", s.Name(0))
	assert.Equal(t, 0, s.Row(0))
	assert.Equal(t, 0, s.Col(0))
	assert.Equal(t, 0, s.Length(0))
	assert.Equal(t, "", s.Functions(0))
	assert.Equal(t, byte(' '), s.Usage(0))
}

func TestLineEndingConventions(t *testing.T) {
	crlf := "      * one\r\n      * two\r\n"
	lf := "      * one\n      * two\n"

	a := NewScanner(crlf)
	b := NewScanner(lf)

	assert.Equal(t, a.Len(), b.Len())
	assert.Equal(t, a.Content(0), b.Content(0))
	assert.Equal(t, a.Content(1), b.Content(1))
}

func TestSequenceAreaWidth(t *testing.T) {
	// Same record header, no sequence area at all.
	raw := strings.Repeat(" ", 10) + "R CUSTPNL"
	s := NewScanner(raw, Options{SequenceAreaWidth: 0})

	assert.Equal(t, RecordHeader, s.Kind(0))
	assert.Equal(t, "CUSTPNL", s.Name(0))
}

func TestFieldSlices(t *testing.T) {
	line := content(map[int]string{
		1:  "N05",
		12: "CUSTNAME",
		22: "R",
		23: "   30",
		28: "A",
		29: " 0",
		31: "B",
		32: "  5",
		35: " 10",
		38: "CHECK(ME)",
	})

	s := NewScanner(line)

	assert.Equal(t, "CUSTNAME", s.Name(0))
	assert.True(t, s.Referenced(0))
	assert.Equal(t, 30, s.Length(0))
	assert.Equal(t, byte('A'), s.TypeChar(0))
	assert.Equal(t, 0, s.Decimals(0))
	assert.Equal(t, byte('B'), s.Usage(0))
	assert.Equal(t, 5, s.Row(0))
	assert.Equal(t, 10, s.Col(0))
	assert.Equal(t, "CHECK(ME)", s.Functions(0))
}
