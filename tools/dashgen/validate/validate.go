// Package validate checks generated dashboards and rules for PromQL syntax
// errors and references to metrics deal-desk does not export.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/deal-desk/tools/dashgen/rules"
)

// histogramSuffixes are the series a histogram exposes under its base name.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects validation problems. Errors fail generation; warnings are
// reported but do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

type panelJSON struct {
	Type    string      `json:"type"`
	Title   string      `json:"title"`
	Panels  []panelJSON `json:"panels"`
	Targets []struct {
		Expr string `json:"expr"`
	} `json:"targets"`
}

// Dashboard validates every query in a marshaled Grafana dashboard. Row
// panels are descended into.
func Dashboard(data []byte, known map[string]bool) Result {
	var res Result

	var dash struct {
		Panels []panelJSON `json:"panels"`
	}
	if err := json.Unmarshal(data, &dash); err != nil {
		res.errorf("decoding dashboard: %v", err)
		return res
	}

	var walk func(panels []panelJSON)
	walk = func(panels []panelJSON) {
		for _, p := range panels {
			if p.Type == "row" {
				walk(p.Panels)
				continue
			}
			if len(p.Targets) == 0 {
				res.warnf("panel %q has no queries", p.Title)
			}
			for _, t := range p.Targets {
				checkExpr(&res, "panel "+p.Title, t.Expr, known, true)
			}
		}
	}
	walk(dash.Panels)

	return res
}

// Rules validates the expressions of a PrometheusRule CR. Recording rule
// names must themselves be known metrics.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Alert
			if r.Record != "" {
				name = r.Record
				if !known[r.Record] {
					res.errorf("rule %s: recording rule is not in the known metric set", r.Record)
				}
			}
			checkExpr(&res, "rule "+name, r.Expr, known, false)
		}
	}
	return res
}

// checkExpr parses expr and checks each selected metric name. When
// requireJob is set, raw deal-desk series must carry a job matcher.
func checkExpr(res *Result, where, expr string, known map[string]bool, requireJob bool) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("%s: invalid PromQL %q: %v", where, expr, err)
		return
	}

	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !isKnown(vs.Name, known) {
			res.errorf("%s: unknown metric %q", where, vs.Name)
			return nil
		}
		if requireJob && strings.HasPrefix(vs.Name, "dealdesk_") && !hasMatcher(vs, "job") {
			res.warnf("%s: %s has no job matcher", where, vs.Name)
		}
		return nil
	})
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

func hasMatcher(vs *parser.VectorSelector, label string) bool {
	for _, m := range vs.LabelMatchers {
		if m.Name == label {
			return true
		}
	}
	return false
}
