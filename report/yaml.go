package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mcflow/flow"
	"github.com/katalvlaran/mcflow/scenario"
)

type comparisonDoc struct {
	RunID      string      `yaml:"run_id"`
	Scenarios  []resultDoc `yaml:"scenarios"`
	Computable bool        `yaml:"computable"`
	Reduction  *float64    `yaml:"reduction,omitempty"`
	Percent    *float64    `yaml:"percent,omitempty"`
	Failed     []string    `yaml:"failed,omitempty"`
	Warnings   []string    `yaml:"warnings,omitempty"`
}

type resultDoc struct {
	Scenario   string         `yaml:"scenario"`
	Status     string         `yaml:"status"`
	Objective  *float64       `yaml:"objective,omitempty"`
	LowerBound *float64       `yaml:"lower_bound,omitempty"`
	Rows       int            `yaml:"rows"`
	Columns    int            `yaml:"columns"`
	NonZeros   int            `yaml:"nonzeros"`
	FreeEdges  []string       `yaml:"free_edges,omitempty"`
	Edges      []edgeDoc      `yaml:"edges,omitempty"`
	Shortcut   []directionDoc `yaml:"shortcut,omitempty"`
}

type edgeDoc struct {
	From  string             `yaml:"from"`
	To    string             `yaml:"to"`
	Total float64            `yaml:"total"`
	Flows map[string]float64 `yaml:"flows"`
}

type directionDoc struct {
	From     string             `yaml:"from"`
	To       string             `yaml:"to"`
	Capacity float64            `yaml:"capacity"`
	Total    float64            `yaml:"total"`
	Flows    map[string]float64 `yaml:"flows,omitempty"`
}

// WriteYAML renders cmp as a YAML document. Numbers are left unrounded.
func WriteYAML(w io.Writer, cmp *scenario.Comparison) error {
	doc := comparisonDoc{RunID: cmp.RunID, Computable: cmp.Computable}
	for _, res := range []*scenario.Result{cmp.Baseline, cmp.Augmented} {
		if res != nil {
			doc.Scenarios = append(doc.Scenarios, newResultDoc(res))
		}
	}
	if cmp.Computable {
		doc.Reduction, doc.Percent = ptr(cmp.Reduction), ptr(cmp.Percent)
	}
	for _, k := range cmp.Failed {
		doc.Failed = append(doc.Failed, string(k))
	}
	for _, warn := range cmp.Warnings {
		doc.Warnings = append(doc.Warnings, warn.String())
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

func newResultDoc(res *scenario.Result) resultDoc {
	d := resultDoc{
		Scenario: string(res.Scenario),
		Status:   res.Status.String(),
		Rows:     res.Stats.Rows,
		Columns:  res.Stats.Cols,
		NonZeros: res.Stats.NonZeros,
	}
	for _, e := range res.FreeEdges {
		d.FreeEdges = append(d.FreeEdges, e.String())
	}
	if !res.Optimal() {
		return d
	}
	d.Objective, d.LowerBound = ptr(res.Objective), ptr(res.LowerBound)
	for _, ef := range res.Edges {
		d.Edges = append(d.Edges, edgeDoc{
			From:  ef.Edge.From,
			To:    ef.Edge.To,
			Total: ef.Total,
			Flows: byCommodity(ef.ByCommodity),
		})
	}
	if res.Shortcut != nil {
		for _, u := range []flow.DirectionUsage{res.Shortcut.Forward, res.Shortcut.Backward} {
			d.Shortcut = append(d.Shortcut, directionDoc{
				From:     u.Edge.From,
				To:       u.Edge.To,
				Capacity: u.Capacity,
				Total:    u.Total,
				Flows:    byCommodity(u.ByCommodity),
			})
		}
	}

	return d
}

func byCommodity(flows []flow.CommodityFlow) map[string]float64 {
	if len(flows) == 0 {
		return nil
	}
	out := make(map[string]float64, len(flows))
	for _, cf := range flows {
		out[cf.Commodity] = cf.Value
	}

	return out
}

func ptr(v float64) *float64 { return &v }
