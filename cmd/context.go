package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/lawdiff/config"
	"github.com/masmgr/lawdiff/internal/corpus"
	"github.com/masmgr/lawdiff/internal/git"
	"github.com/masmgr/lawdiff/internal/history"
	"github.com/masmgr/lawdiff/internal/normative"
	"github.com/masmgr/lawdiff/internal/output"
	"github.com/masmgr/lawdiff/internal/textdiff"
)

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic across all analysis commands.
type CommandContext struct {
	Config  *config.Config
	Logger  *logrus.Logger
	Repo    *git.Repo
	Options history.Options
}

// NewCommandContext creates a context from CLI flags.
// It performs configuration loading, repository opening and construction of
// the matcher, differ and classifier.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	logger := newLogger(c)

	if _, err := getOutputFormat(cfg.Output.Format); err != nil {
		return nil, err
	}

	renameMode, err := parseRenameDetectFlag(cfg.Diff.RenameDetect)
	if err != nil {
		return nil, err
	}

	repo, err := git.Open(cfg.Repository.Path, git.ReadOptions{
		Include:      cfg.Filters.Include,
		Exclude:      cfg.Filters.Exclude,
		RenameDetect: renameMode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	matcher, err := corpus.NewMatcher(cfg.Corpus.DatePattern, cfg.Corpus.DocumentPattern)
	if err != nil {
		return nil, err
	}

	differ, err := newDiffer(cfg, repo, logger)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Config: cfg,
		Logger: logger,
		Repo:   repo,
		Options: history.Options{
			Start:       cfg.Repository.Start,
			Matcher:     matcher,
			Differ:      differ,
			Classifier:  normative.NewClassifier(normative.NewNormalizer()),
			Logger:      logger,
			CaptureText: cfg.Output.CaptureText,
		},
	}, nil
}

// newDiffer builds the line differ. Without a configured algorithm the
// repository's diff.algorithm setting is used, falling back to histogram.
func newDiffer(cfg *config.Config, repo *git.Repo, logger logrus.FieldLogger) (*textdiff.Differ, error) {
	algorithm, err := textdiff.ParseAlgorithm(cfg.Diff.Algorithm)
	if err != nil {
		return nil, err
	}
	if cfg.Diff.Algorithm == "" {
		if pref := repo.DiffAlgorithmPreference(); pref != "" {
			if parsed, err := textdiff.ParseAlgorithm(pref); err == nil {
				algorithm = parsed
			} else {
				logger.WithField("diff.algorithm", pref).Warn("unsupported repository diff algorithm, using histogram")
			}
		}
	}

	comparator, err := textdiff.ParseComparator(cfg.Diff.Whitespace)
	if err != nil {
		return nil, err
	}

	maxSize, err := cfg.MaxBlobBytes()
	if err != nil {
		return nil, err
	}

	return textdiff.NewDiffer(textdiff.Options{
		Algorithm:  algorithm,
		Comparator: comparator,
		MaxSize:    maxSize,
	}), nil
}

// OutputOptions creates OutputOptions from the effective configuration.
func (ctx *CommandContext) OutputOptions(counts bool) (output.OutputOptions, error) {
	format, err := getOutputFormat(ctx.Config.Output.Format)
	if err != nil {
		return output.OutputOptions{}, err
	}
	path := ctx.Config.Output.Path
	if path == "-" || format == output.FormatConsole {
		path = ""
	}
	return output.OutputOptions{
		Format:     format,
		OutputPath: path,
		Counts:     counts,
	}, nil
}
