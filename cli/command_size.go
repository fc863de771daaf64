package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/christianlarsen/dspf-edit/parser"
)

// SizeCmd represents the size command
type SizeCmd struct {
	File string `arg:"" help:"DDS display source file" type:"path"`
}

// Run shows the resolved document geometries and every record-level
// window override.
func (s *SizeCmd) Run(ctx *Context) error {
	result, _, err := loadDocument(ctx, s.File)
	if err != nil {
		return err
	}

	primary := result.Size.Primary
	fmt.Printf("primary:   %dx%d%s\n", primary.Rows, primary.Cols, geometryName(primary))

	if secondary := result.Size.Secondary; secondary != nil {
		fmt.Printf("secondary: %dx%d%s\n", secondary.Rows, secondary.Cols, geometryName(*secondary))
	}

	for _, mirror := range result.Records {
		if mirror.Size.Source != parser.SizeSourceWindow {
			continue
		}

		color.Cyan("%s: window %dx%d at %d,%d", mirror.Name, mirror.Size.Rows, mirror.Size.Cols, mirror.Size.OriginRow, mirror.Size.OriginCol)
	}

	return nil
}

func geometryName(g parser.Geometry) string {
	if g.Name == "" {
		return ""
	}

	return " " + g.Name
}
