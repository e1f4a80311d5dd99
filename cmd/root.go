package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/lawdiff/config"
	"github.com/masmgr/lawdiff/internal/git"
	"github.com/masmgr/lawdiff/internal/output"
)

// App creates the CLI application. Running it without a command analyzes
// the repository in the working directory and writes result.csv.
func App() *cli.App {
	return &cli.App{
		Name:    "lawdiff",
		Usage:   "Dated log of normative changes in a legal-text Git corpus",
		Version: "1.0.0",
		Commands: []*cli.Command{
			AnalyzeCmd(),
			CountsCmd(),
			InitConfigCmd(),
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file (.json, .yaml or .yml)",
			},
		}, commonFlags()...),
		Action: analyzeAction,
	}
}

// Common flags shared across commands. They carry no defaults of their own:
// an unset flag leaves the configuration value in place.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository (default: .)",
		},
		&cli.StringFlag{
			Name:    "start",
			Aliases: []string{"s"},
			Usage:   "Revision to walk back from (default: HEAD)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path, \"-\" for stdout (default: result.csv)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (csv, json, ndjson, markdown, console)",
		},
		&cli.BoolFlag{
			Name:  "counts",
			Usage: "Write per-date document counts instead of one row per change",
		},
		&cli.BoolFlag{
			Name:  "capture-text",
			Usage: "Attach the text of the first normative edit to modify records",
		},
		&cli.StringFlag{
			Name:  "algorithm",
			Usage: "Line diff algorithm (histogram, myers); default: repository diff.algorithm, then histogram",
		},
		&cli.StringFlag{
			Name:  "whitespace",
			Usage: "Line comparison (ignore-all, exact)",
		},
		&cli.StringFlag{
			Name:  "max-blob-size",
			Usage: "Largest blob diffed line by line, e.g. 50MiB",
		},
		&cli.StringFlag{
			Name:  "rename-detect",
			Usage: "Rename detection mode (off, exact, similarity)",
		},
		&cli.StringFlag{
			Name:  "date-pattern",
			Usage: "Regex a commit message must match to be a dated commit",
		},
		&cli.StringFlag{
			Name:  "document-pattern",
			Usage: "Regex extracting the BWB id from a path (capture group \"id\")",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns to exclude (can be specified multiple times)",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Log every commit pair",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Only log errors",
		},
	}
}

// parseRenameDetectFlag parses the rename detection mode.
func parseRenameDetectFlag(s string) (git.RenameDetectMode, error) {
	switch s {
	case "", "off", "false", "none":
		return git.RenameDetectOff, nil
	case "exact", "simple":
		return git.RenameDetectExact, nil
	case "similarity", "aggressive":
		return git.RenameDetectSimilarity, nil
	default:
		return git.RenameDetectOff, fmt.Errorf("invalid rename-detect value: %q (expected off, exact or similarity)", s)
	}
}

// getOutputFormat parses the output format flag. An empty value selects CSV.
func getOutputFormat(s string) (output.OutputFormat, error) {
	switch s {
	case "", "csv":
		return output.FormatCSV, nil
	case "json":
		return output.FormatJSON, nil
	case "markdown", "md":
		return output.FormatMarkdown, nil
	case "ndjson", "ci":
		return output.FormatNDJSON, nil
	case "console":
		return output.FormatConsole, nil
	default:
		return "", fmt.Errorf("invalid output format: %q (expected csv, json, ndjson, markdown or console)", s)
	}
}

// loadConfig loads configuration from file or defaults and applies the
// flags that were set on the command line.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrides := []struct {
		flag   string
		target *string
	}{
		{"repo", &cfg.Repository.Path},
		{"start", &cfg.Repository.Start},
		{"output", &cfg.Output.Path},
		{"format", &cfg.Output.Format},
		{"algorithm", &cfg.Diff.Algorithm},
		{"whitespace", &cfg.Diff.Whitespace},
		{"max-blob-size", &cfg.Diff.MaxBlobSize},
		{"rename-detect", &cfg.Diff.RenameDetect},
		{"date-pattern", &cfg.Corpus.DatePattern},
		{"document-pattern", &cfg.Corpus.DocumentPattern},
	}
	for _, o := range overrides {
		if c.IsSet(o.flag) {
			*o.target = c.String(o.flag)
		}
	}
	if c.IsSet("capture-text") {
		cfg.Output.CaptureText = c.Bool("capture-text")
	}

	// Apply filter overrides from CLI
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}

	return cfg, nil
}

// newLogger creates the diagnostics logger. Diagnostics go to stderr so
// they never mix with a report written to stdout.
func newLogger(c *cli.Context) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(c.App.ErrWriter)
	switch {
	case c.Bool("quiet"):
		logger.SetLevel(logrus.ErrorLevel)
	case c.Bool("verbose"):
		logger.SetLevel(logrus.DebugLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
