package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/christianlarsen/dspf-edit/cli"
)

var version = "0.1.0"

// CLI declares the command tree
var CLI struct {
	Config    string           `help:"Configuration file path" default:"dspf-edit.yaml"`
	Verbose   bool             `help:"Enable verbose output" short:"v"`
	Quiet     bool             `help:"Suppress output" short:"q"`
	Structure cli.StructureCmd `cmd:"" help:"Print the element tree of a display source file"`
	Records   cli.RecordsCmd   `cmd:"" help:"Dump the per-record mirror index"`
	Size      cli.SizeCmd      `cmd:"" help:"Show resolved display geometries and window overrides"`
	Check     cli.CheckCmd     `cmd:"" help:"Report structural findings"`
	Version   VersionCmd       `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run() error {
	fmt.Printf("dspf-edit v%s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)

	appCtx := &cli.Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
