package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/lawdiff/config"
)

// InitConfigCmd returns the init-config command.
func InitConfigCmd() *cli.Command {
	return &cli.Command{
		Name:      "init-config",
		Usage:     "Write a configuration file with the default settings",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing file",
			},
		},
		Action: initConfigAction,
	}
}

func initConfigAction(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		path = ".lawdiff.yaml"
	}
	if _, err := os.Stat(path); err == nil && !c.Bool("force") {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "Wrote %s\n", path)
	return nil
}
