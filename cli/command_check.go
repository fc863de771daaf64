package cli

import (
	"fmt"

	"github.com/fatih/color"

	dspfedit "github.com/christianlarsen/dspf-edit"
)

// CheckCmd represents the check command
type CheckCmd struct {
	File string `arg:"" help:"DDS display source file" type:"path"`
}

// Run reports the structural findings of a parse: suppressed duplicate
// names, unterminated continuations, records with no positioned elements.
// Findings never abort the parse; they only set the exit status.
func (c *CheckCmd) Run(ctx *Context) error {
	result, _, err := loadDocument(ctx, c.File)
	if err != nil {
		return err
	}

	if len(result.Findings) == 0 {
		if !ctx.Quiet {
			color.Green("No structural findings in %s", c.File)
		}

		return nil
	}

	for _, finding := range result.Findings {
		color.Yellow("line %d: %s: %s", finding.LineNo+1, finding.Kind, finding.Message)
	}

	return fmt.Errorf("%w: %d finding(s) in %s", dspfedit.ErrFindings, len(result.Findings), c.File)
}
