package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/christianlarsen/dspf-edit/parser"
)

// StructureCmd represents the structure command
type StructureCmd struct {
	File string `arg:"" help:"DDS display source file" type:"path"`
}

// Run prints the element tree as an indented listing: records at the top
// level, their fields and constants beneath, attributes inline.
func (s *StructureCmd) Run(ctx *Context) error {
	result, _, err := loadDocument(ctx, s.File)
	if err != nil {
		return err
	}

	if ctx.Verbose {
		color.Blue("Parsed %s: %d records", s.File, len(result.Records))
	}

	file := result.File()
	if len(file.Attributes) > 0 {
		color.Cyan("file")

		for _, attr := range file.Attributes {
			fmt.Printf("  %s%s\n", attr.Value, indicatorSuffix(attr.Indicators))
		}
	}

	for _, element := range result.Elements {
		switch e := element.(type) {
		case *parser.Record:
			label := "record"
			if e.IsSubfile() {
				label = "subfile record"
			}

			color.Cyan("%s %s (lines %d-%d, %s)", label, e.Name, e.StartLine+1, e.EndLine+1, describeSize(e.Size))

			for _, attr := range e.Attributes {
				fmt.Printf("  %s%s\n", attr.Value, indicatorSuffix(attr.Indicators))
			}
		case *parser.Field:
			fmt.Printf("  field %s %s%s\n", e.Name, describeField(e), indicatorSuffix(e.Indicators))

			for _, attr := range e.Attributes {
				fmt.Printf("    %s%s\n", attr.Value, indicatorSuffix(attr.Indicators))
			}
		case *parser.Constant:
			fmt.Printf("  constant %s at %d,%d%s\n", e.Name, e.Row, e.Col, indicatorSuffix(e.Indicators))

			for _, attr := range e.Attributes {
				fmt.Printf("    %s%s\n", attr.Value, indicatorSuffix(attr.Indicators))
			}
		}
	}

	return nil
}

func describeField(f *parser.Field) string {
	var b strings.Builder

	if f.Type != ' ' && f.Type != 0 {
		fmt.Fprintf(&b, "%c", f.Type)
	}

	fmt.Fprintf(&b, "%d", f.Length)

	if f.Decimals > 0 {
		fmt.Fprintf(&b, ",%d", f.Decimals)
	}

	switch {
	case f.Usage.Hidden():
		b.WriteString(" hidden")
	case f.Usage == parser.UsageInput:
		fmt.Fprintf(&b, " input at %d,%d", f.Row, f.Col)
	case f.Usage == parser.UsageBoth:
		fmt.Fprintf(&b, " both at %d,%d", f.Row, f.Col)
	default:
		fmt.Fprintf(&b, " output at %d,%d", f.Row, f.Col)
	}

	if f.Referenced {
		b.WriteString(" (ref)")
	}

	return b.String()
}

func describeSize(size parser.RecordSize) string {
	if size.Source == parser.SizeSourceWindow {
		return fmt.Sprintf("window %dx%d at %d,%d", size.Rows, size.Cols, size.OriginRow, size.OriginCol)
	}

	return fmt.Sprintf("%dx%d", size.Rows, size.Cols)
}
