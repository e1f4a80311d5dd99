package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/masmgr/lawdiff/internal/corpus"
)

// Config is the root configuration structure.
type Config struct {
	Repository RepositoryConfig `json:"repository" yaml:"repository"`
	Corpus     CorpusConfig     `json:"corpus" yaml:"corpus"`
	Diff       DiffConfig       `json:"diff" yaml:"diff"`
	Filters    FilterConfig     `json:"filters" yaml:"filters"`
	Output     OutputConfig     `json:"output" yaml:"output"`
}

// RepositoryConfig selects the repository and where the walk starts.
type RepositoryConfig struct {
	Path  string `json:"path" yaml:"path"`   // Default: "."
	Start string `json:"start" yaml:"start"` // Default: "HEAD"
}

// CorpusConfig holds the patterns that recognise dated commits and document
// paths.
type CorpusConfig struct {
	DatePattern     string `json:"datePattern" yaml:"datePattern"`
	DocumentPattern string `json:"documentPattern" yaml:"documentPattern"` // needs a capture group, preferably named "id"
}

// DiffConfig holds line diff options.
type DiffConfig struct {
	Algorithm    string `json:"algorithm" yaml:"algorithm"`       // empty: repository diff.algorithm, then histogram
	Whitespace   string `json:"whitespace" yaml:"whitespace"`     // ignore-all or exact
	MaxBlobSize  string `json:"maxBlobSize" yaml:"maxBlobSize"`   // e.g. "50MiB"
	RenameDetect string `json:"renameDetect" yaml:"renameDetect"` // off, exact or similarity
}

// FilterConfig holds file path filtering options.
type FilterConfig struct {
	Include []string `json:"include" yaml:"include"`
	Exclude []string `json:"exclude" yaml:"exclude"`
}

// OutputConfig controls the report.
type OutputConfig struct {
	Path        string `json:"path" yaml:"path"`     // Default: "result.csv"
	Format      string `json:"format" yaml:"format"` // Default: "csv"
	CaptureText bool   `json:"captureText" yaml:"captureText"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Repository: RepositoryConfig{
			Path:  ".",
			Start: "HEAD",
		},
		Corpus: CorpusConfig{
			DatePattern:     corpus.DefaultDatePattern,
			DocumentPattern: corpus.DefaultDocumentPattern,
		},
		Diff: DiffConfig{
			Algorithm:    "",
			Whitespace:   "ignore-all",
			MaxBlobSize:  "50MiB",
			RenameDetect: "off",
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
		Output: OutputConfig{
			Path:   "result.csv",
			Format: "csv",
		},
	}
}

// MaxBlobBytes parses Diff.MaxBlobSize. An empty value or "0" disables the
// limit.
func (c *Config) MaxBlobBytes() (int64, error) {
	s := strings.TrimSpace(c.Diff.MaxBlobSize)
	if s == "" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid maxBlobSize %q: %w", c.Diff.MaxBlobSize, err)
	}
	return int64(n), nil
}

var candidateNames = []string{".lawdiff.json", ".lawdiff.yaml", ".lawdiff.yml"}

// LoadConfig loads configuration from a file, merging with defaults. Files
// ending in .yaml or .yml are read as YAML, everything else as JSON.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = findConfig()
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// findConfig tries the default locations: the working directory first, then
// the home directory.
func findConfig() string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, home)
	} else if envHome := os.Getenv("HOME"); envHome != "" {
		dirs = append(dirs, envHome)
	}
	for _, dir := range dirs {
		for _, name := range candidateNames {
			p := filepath.Join(dir, name)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}
	return ""
}

// SaveConfig saves configuration to a file, as YAML or JSON depending on the
// extension.
func SaveConfig(cfg *Config, path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
