// Package cli implements the read-only inspection commands of the
// dspf-edit tool. Every command re-parses its input; nothing here mutates
// source text.
package cli

import (
	"fmt"
	"os"

	dspfedit "github.com/christianlarsen/dspf-edit"
	"github.com/christianlarsen/dspf-edit/parser"
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
}

// loadDocument reads the source file and parses it with the configured
// options. The parse itself cannot fail; only config and file access can.
func loadDocument(ctx *Context, path string) (*parser.ParseResult, *dspfedit.Config, error) {
	config, err := dspfedit.LoadConfig(ctx.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("%w: %s", dspfedit.ErrInputFileNotExist, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read source file: %w", err)
	}

	result := parser.Parse(string(data), parser.Options{
		SequenceAreaWidth: config.SequenceWidth(),
		Fallback: parser.Geometry{
			Rows: config.Fallback.Rows,
			Cols: config.Fallback.Columns,
		},
	})

	return result, config, nil
}
