// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and reference only known metrics.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/offer-finder/tools/dashgen/rules"
)

// Result collects validation findings.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// histogramSuffixes are stripped before looking a series up in known.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Metrics parses expr and returns the metric names it selects.
func Metrics(expr string) ([]string, error) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, err
	}

	var names []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		if vs, ok := n.(*parser.VectorSelector); ok && vs.Name != "" {
			names = append(names, vs.Name)
		}
		return nil
	})
	return names, nil
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

// Expr validates one expression, reporting findings under where.
func Expr(r *Result, where, expr string, known map[string]bool) {
	names, err := Metrics(expr)
	if err != nil {
		r.errorf("%s: invalid PromQL %q: %v", where, expr, err)
		return
	}
	if len(names) == 0 {
		r.warnf("%s: expression %q selects no metrics", where, expr)
	}
	for _, name := range names {
		if !isKnown(name, known) {
			r.errorf("%s: unknown metric %q", where, name)
		}
	}
}

// Dashboard validates every panel target in d, including panels nested in
// rows.
func Dashboard(d *dashboard.Dashboard, known map[string]bool) Result {
	var r Result
	for _, p := range d.Panels {
		if p.Panel != nil {
			panel(&r, p.Panel, known)
		}
		if p.RowPanel != nil {
			for i := range p.RowPanel.Panels {
				panel(&r, &p.RowPanel.Panels[i], known)
			}
		}
	}
	return r
}

func panel(r *Result, p *dashboard.Panel, known map[string]bool) {
	title := "untitled panel"
	if p.Title != nil {
		title = *p.Title
	}
	if len(p.Targets) == 0 {
		r.warnf("panel %q has no targets", title)
		return
	}

	for i, target := range p.Targets {
		expr, err := targetExpr(target)
		if err != nil {
			r.errorf("panel %q target %d: %v", title, i, err)
			continue
		}
		Expr(r, fmt.Sprintf("panel %q", title), expr, known)
	}
}

// targetExpr reads the expr field of a query target through its JSON form,
// which every datasource variant supports.
func targetExpr(target any) (string, error) {
	data, err := json.Marshal(target)
	if err != nil {
		return "", fmt.Errorf("encoding target: %w", err)
	}
	var q struct {
		Expr string `json:"expr"`
	}
	if err := json.Unmarshal(data, &q); err != nil {
		return "", fmt.Errorf("decoding target: %w", err)
	}
	if q.Expr == "" {
		return "", fmt.Errorf("target has no expr")
	}
	return q.Expr, nil
}

// Rules validates every rule expression in pr.
func Rules(pr *rules.PrometheusRule, known map[string]bool) Result {
	var r Result
	for name, expr := range pr.Exprs() {
		Expr(&r, "rule "+name, expr, known)
	}
	return r
}
