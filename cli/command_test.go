package cli

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/goccy/go-yaml"

	dspfedit "github.com/christianlarsen/dspf-edit"
	"github.com/christianlarsen/dspf-edit/parser"
)

// sourceLine builds one physical line: the 6-character sequence area plus
// text placed at the given content-area offsets.
func sourceLine(placements map[int]string) string {
	buf := make([]byte, 74)
	for i := range buf {
		buf[i] = ' '
	}

	for offset, text := range placements {
		copy(buf[offset:], text)
	}

	return "      " + strings.TrimRight(string(buf), " ")
}

// writeSource stores a display source document in a temp file.
func writeSource(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "screen.dspf")
	err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
	assert.NoError(t, err)

	return path
}

// testContext points at a missing config file so defaults apply.
func testContext(t *testing.T) *Context {
	t.Helper()

	return &Context{
		Config: filepath.Join(t.TempDir(), "missing.yaml"),
		Quiet:  true,
	}
}

// captureStdout redirects os.Stdout around fn and returns what was
// written.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	old := os.Stdout

	r, w, err := os.Pipe()
	assert.NoError(t, err)

	os.Stdout = w

	runErr := fn()

	os.Stdout = old

	assert.NoError(t, w.Close())

	data, err := io.ReadAll(r)
	assert.NoError(t, err)

	return string(data), runErr
}

func TestCheckCmd(t *testing.T) {
	t.Run("CleanDocument", func(t *testing.T) {
		path := writeSource(t,
			sourceLine(map[int]string{10: "R", 12: "PANEL"}),
			sourceLine(map[int]string{12: "NAME", 23: "   20", 31: "I", 32: "  3", 35: "  4"}),
		)

		cmd := &CheckCmd{File: path}
		assert.NoError(t, cmd.Run(testContext(t)))
	})

	t.Run("FindingsMapToError", func(t *testing.T) {
		// Duplicate field name: the parse succeeds, check must not.
		path := writeSource(t,
			sourceLine(map[int]string{10: "R", 12: "PANEL"}),
			sourceLine(map[int]string{12: "NAME", 23: "   20", 31: "I", 32: "  3", 35: "  4"}),
			sourceLine(map[int]string{12: "NAME", 23: "   12", 31: "I", 32: "  5", 35: "  4"}),
		)

		cmd := &CheckCmd{File: path}
		err := cmd.Run(testContext(t))

		assert.Error(t, err)
		assert.True(t, errors.Is(err, dspfedit.ErrFindings))
	})

	t.Run("MissingFile", func(t *testing.T) {
		cmd := &CheckCmd{File: filepath.Join(t.TempDir(), "nope.dspf")}
		err := cmd.Run(testContext(t))

		assert.Error(t, err)
		assert.True(t, errors.Is(err, dspfedit.ErrInputFileNotExist))
	})
}

func TestRecordsCmdYAML(t *testing.T) {
	path := writeSource(t,
		sourceLine(map[int]string{10: "R", 12: "PANEL"}),
		sourceLine(map[int]string{12: "NAME", 23: "   20", 31: "I", 32: "  3", 35: "  4"}),
		sourceLine(map[int]string{32: "  1", 35: " 30", 38: "'Title'"}),
	)

	cmd := &RecordsCmd{File: path, YAML: true}

	out, err := captureStdout(t, func() error {
		return cmd.Run(testContext(t))
	})
	assert.NoError(t, err)

	var mirrors []parser.RecordMirror

	assert.NoError(t, yaml.Unmarshal([]byte(out), &mirrors))
	assert.Equal(t, 1, len(mirrors))
	assert.Equal(t, "PANEL", mirrors[0].Name)
	assert.Equal(t, 0, mirrors[0].StartLine)
	assert.Equal(t, 2, mirrors[0].EndLine)
	assert.Equal(t, parser.SizeSourceDefault, mirrors[0].Size.Source)
	assert.Equal(t, 24, mirrors[0].Size.Rows)
	assert.Equal(t, 80, mirrors[0].Size.Cols)

	assert.Equal(t, 1, len(mirrors[0].Fields))
	assert.Equal(t, "NAME", mirrors[0].Fields[0].Name)

	assert.Equal(t, 1, len(mirrors[0].Constants))
	assert.Equal(t, "Title", mirrors[0].Constants[0].Name)
}

func TestStructureCmd(t *testing.T) {
	path := writeSource(t,
		sourceLine(map[int]string{10: "R", 12: "PANEL"}),
		sourceLine(map[int]string{12: "NAME", 23: "   20", 31: "I", 32: "  3", 35: "  4"}),
		sourceLine(map[int]string{32: "  1", 35: " 30", 38: "'Title'"}),
	)

	cmd := &StructureCmd{File: path}

	out, err := captureStdout(t, func() error {
		return cmd.Run(testContext(t))
	})
	assert.NoError(t, err)

	assert.Contains(t, out, "field NAME")
	assert.Contains(t, out, "constant 'Title'")
}

func TestSizeCmd(t *testing.T) {
	path := writeSource(t,
		sourceLine(map[int]string{38: "DSPSIZ(27 132 *DS4)"}),
		sourceLine(map[int]string{10: "R", 12: "PANEL"}),
		sourceLine(map[int]string{12: "NAME", 23: "   20", 31: "I", 32: "  3", 35: "  4"}),
	)

	cmd := &SizeCmd{File: path}

	out, err := captureStdout(t, func() error {
		return cmd.Run(testContext(t))
	})
	assert.NoError(t, err)

	assert.Contains(t, out, "primary:   27x132 *DS4")
}
