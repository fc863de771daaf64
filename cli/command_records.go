package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
)

// RecordsCmd represents the records command
type RecordsCmd struct {
	File string `arg:"" help:"DDS display source file" type:"path"`
	YAML bool   `help:"Emit the mirror as YAML for scripting" name:"yaml"`
}

// Run dumps the per-record mirror: name, line range, resolved size, and
// the field/constant summaries.
func (r *RecordsCmd) Run(ctx *Context) error {
	result, config, err := loadDocument(ctx, r.File)
	if err != nil {
		return err
	}

	if r.YAML || config.Output.Format == "yaml" {
		data, err := yaml.Marshal(result.Records)
		if err != nil {
			return fmt.Errorf("failed to marshal mirror: %w", err)
		}

		_, err = os.Stdout.Write(data)

		return err
	}

	for _, mirror := range result.Records {
		color.Cyan("%s (lines %d-%d, %s)", mirror.Name, mirror.StartLine+1, mirror.EndLine+1, describeSize(mirror.Size))

		for _, attr := range mirror.Attributes {
			fmt.Printf("  %s\n", attr)
		}

		for _, field := range mirror.Fields {
			fmt.Printf("  field %-10s len %-5d at %d,%d\n", field.Name, field.Length, field.Row, field.Col)
		}

		for _, constant := range mirror.Constants {
			fmt.Printf("  constant %q at %d,%d\n", constant.Name, constant.Row, constant.Col)
		}
	}

	return nil
}
