// Package suite loads YAML-declared test-case suites and runs them against
// built-in or raw patterns.
package suite

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rexlang/rex/pattern"
)

// Config is the top-level shape of a suite file.
type Config struct {
	Name   string  `yaml:"name"`
	Suites []Suite `yaml:"suites"`
}

// Suite is one named set of test cases against a single pattern. Either
// Pattern (a built-in name) or Regex (a raw expression) must be set.
type Suite struct {
	Name    string          `yaml:"name"`
	Pattern string          `yaml:"pattern,omitempty"`
	Regex   string          `yaml:"regex,omitempty"`
	Cases   map[string]bool `yaml:"cases"`
}

// Result is the outcome of running one suite.
type Result struct {
	Suite  string
	Regex  string
	Report *pattern.Report
}

// Load reads and parses a suite file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse suite file: %w", err)
	}
	if len(cfg.Suites) == 0 {
		return nil, fmt.Errorf("suite file %s declares no suites", path)
	}
	return &cfg, nil
}

// Run executes every suite in the config, showing one progress bar across
// all cases. Failed cases are reported in the returned results, not as
// errors; an error means a suite could not be run at all.
func Run(ctx context.Context, logger *zap.Logger, cfg *Config) ([]Result, error) {
	total := 0
	for _, s := range cfg.Suites {
		total += len(s.Cases)
	}
	bar := progressbar.Default(int64(total), "running cases")

	var results []Result
	for _, s := range cfg.Suites {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		result, err := runOne(s)
		if err != nil {
			if logger != nil {
				logger.Error("Error running suite", zap.String("suite", s.Name), zap.Error(err))
			}
			return nil, err
		}

		if logger != nil && result.Report.Failed > 0 {
			logger.Warn("Suite has failing cases",
				zap.String("suite", s.Name),
				zap.Int("failed", result.Report.Failed),
				zap.Int("total", result.Report.Total))
		}

		_ = bar.Add(len(s.Cases))
		results = append(results, result)
	}

	return results, nil
}

func runOne(s Suite) (Result, error) {
	if len(s.Cases) == 0 {
		return Result{}, fmt.Errorf("suite %q has no cases", s.Name)
	}

	switch {
	case s.Pattern != "":
		node, err := Lookup(s.Pattern)
		if err != nil {
			return Result{}, fmt.Errorf("suite %q: %w", s.Name, err)
		}
		return Result{Suite: s.Name, Regex: node.Regex(), Report: node.TestAll(s.Cases)}, nil

	case s.Regex != "":
		report, err := runRaw(s.Regex, s.Cases)
		if err != nil {
			return Result{}, fmt.Errorf("suite %q: %w", s.Name, err)
		}
		return Result{Suite: s.Name, Regex: s.Regex, Report: report}, nil

	default:
		return Result{}, fmt.Errorf("suite %q sets neither pattern nor regex", s.Name)
	}
}

// runRaw evaluates cases against a raw regex. Aggregation and the
// empty-input rule are shared with the node façade via pattern.RunCases.
func runRaw(expr string, cases map[string]bool) (*pattern.Report, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid regex %q: %w", expr, err)
	}
	return pattern.RunCases(re.MatchString, cases), nil
}

// Failed reports whether any suite in results had a failing case.
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Report.Failed > 0 {
			return true
		}
	}
	return false
}
