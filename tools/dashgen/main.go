package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/deal-desk/tools/dashgen/dashboards"
	"github.com/donaldgifford/deal-desk/tools/dashgen/rules"
	"github.com/donaldgifford/deal-desk/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by tools/dashgen. DO NOT EDIT.\n"

// artifact is one generated file, relative to the output directory.
type artifact struct {
	path string
	data []byte
}

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(os.Stdout, cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, cfg Config, validateOnly bool) error {
	artifacts, err := generate(cfg)
	if err != nil {
		return err
	}

	if validateOnly {
		fmt.Fprintln(w, "validation passed")
		return nil
	}

	for _, a := range artifacts {
		path := filepath.Join(cfg.OutputDir, a.path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, a.data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintf(w, "dashgen: wrote %s\n", path)
	}
	return nil
}

// generate builds and validates every enabled artifact.
func generate(cfg Config) ([]artifact, error) {
	var (
		out  []artifact
		errs []error
	)

	if cfg.DashboardEnabled {
		data, err := dashboardJSON()
		if err != nil {
			return nil, err
		}
		res := validate.Dashboard(data, KnownMetrics)
		errs = append(errs, resultErrors("dashboard", res)...)
		out = append(out, artifact{path: filepath.Join("grafana", "data", "deal-desk-overview.json"), data: data})
	}

	if cfg.RulesEnabled {
		for _, cr := range []rules.PrometheusRule{rules.RecordingRules(), rules.AlertRules()} {
			data, err := ruleYAML(cr)
			if err != nil {
				return nil, err
			}
			res := validate.Rules(cr, KnownMetrics)
			errs = append(errs, resultErrors(cr.Metadata.Name, res)...)
			out = append(out, artifact{path: filepath.Join("prometheus", cr.Metadata.Name+".yaml"), data: data})
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

func dashboardJSON() ([]byte, error) {
	dash, err := dashboards.BuildOverview().Build()
	if err != nil {
		return nil, fmt.Errorf("building dashboard: %w", err)
	}
	data, err := json.MarshalIndent(dash, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling dashboard: %w", err)
	}
	return append(data, '\n'), nil
}

func ruleYAML(cr rules.PrometheusRule) ([]byte, error) {
	data, err := yaml.Marshal(cr)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", cr.Metadata.Name, err)
	}
	return append([]byte(generatedHeader), data...), nil
}

func resultErrors(what string, res validate.Result) []error {
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", what, w)
	}
	errs := make([]error, 0, len(res.Errors))
	for _, e := range res.Errors {
		errs = append(errs, fmt.Errorf("%s: %s", what, e))
	}
	return errs
}
