package cmd

import (
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/lawdiff/internal/history"
)

// AnalyzeCmd returns the analyze command.
func AnalyzeCmd() *cli.Command {
	return &cli.Command{
		Name:    "analyze",
		Aliases: []string{"a"},
		Usage:   "Write one row per added, deleted or normatively modified document",
		Flags:   commonFlags(),
		Action:  analyzeAction,
	}
}

// CountsCmd returns the counts command.
func CountsCmd() *cli.Command {
	return &cli.Command{
		Name:   "counts",
		Usage:  "Write the number of documents added, modified and deleted per date",
		Flags:  commonFlags(),
		Action: countsAction,
	}
}

func analyzeAction(c *cli.Context) error {
	return runAnalysis(c, c.Bool("counts"))
}

func countsAction(c *cli.Context) error {
	return runAnalysis(c, true)
}

func runAnalysis(c *cli.Context, counts bool) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	started := time.Now()
	if !c.Bool("quiet") {
		color.New(color.FgCyan).Fprintf(c.App.ErrWriter, "Walking %s from %s\n",
			ctx.Config.Repository.Path, ctx.Config.Repository.Start)
	}

	result, err := history.Run(ctx.Repo, ctx.Options)
	if err != nil {
		return err
	}

	written, err := writeChangeReport(ctx, result, counts)
	if err != nil {
		return err
	}

	if !c.Bool("quiet") {
		printSummary(c, result, written, time.Since(started))
	}
	return nil
}
