package report

import (
	"bufio"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/mcflow/flow"
	"github.com/katalvlaran/mcflow/scenario"
)

// WriteText renders cmp as aligned plain text. Numbers use two decimals.
func WriteText(w io.Writer, cmp *scenario.Comparison) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Run %s\n", cmp.RunID)
	for _, res := range []*scenario.Result{cmp.Baseline, cmp.Augmented} {
		if res == nil {
			continue
		}
		fmt.Fprintln(bw)
		if err := writeResult(bw, res); err != nil {
			return err
		}
	}

	fmt.Fprintln(bw)
	if cmp.Computable {
		fmt.Fprintf(bw, "Distance reduction: %.2f\n", cmp.Reduction)
		fmt.Fprintf(bw, "Percentage reduction: %.2f%%\n", cmp.Percent)
	} else {
		fmt.Fprintf(bw, "Distance reduction: not computable (no optimum for %v)\n", cmp.Failed)
	}
	if len(cmp.Warnings) > 0 {
		fmt.Fprintln(bw, "\nWarnings:")
		for _, warn := range cmp.Warnings {
			fmt.Fprintf(bw, "  %s\n", warn)
		}
	}

	return bw.Flush()
}

func writeResult(w *bufio.Writer, res *scenario.Result) error {
	fmt.Fprintf(w, "Scenario %s: %s\n", res.Scenario, res.Status)
	fmt.Fprintf(w, "Model: %d rows, %d columns, %d nonzeros\n", res.Stats.Rows, res.Stats.Cols, res.Stats.NonZeros)
	for _, e := range res.FreeEdges {
		fmt.Fprintf(w, "Free edge (no distance): %s\n", e)
	}
	if !res.Optimal() {
		fmt.Fprintln(w, "No optimal solution available")

		return nil
	}
	fmt.Fprintf(w, "Total distance: %.2f\n", res.Objective)
	fmt.Fprintf(w, "Shortest-path bound: %.2f\n", res.LowerBound)

	fmt.Fprintln(w, "\nEdge flows:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "edge\ttotal\tcommodity\tflow\t")
	for _, ef := range res.Edges {
		for i, cf := range ef.ByCommodity {
			if i == 0 {
				fmt.Fprintf(tw, "%s\t%.2f\t%s\t%.2f\t\n", ef.Edge, ef.Total, cf.Commodity, cf.Value)
			} else {
				fmt.Fprintf(tw, "\t\t%s\t%.2f\t\n", cf.Commodity, cf.Value)
			}
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if res.Shortcut != nil {
		fmt.Fprintln(w, "\nShortcut usage:")
		writeDirection(w, res.Shortcut.Forward)
		writeDirection(w, res.Shortcut.Backward)
	}

	return nil
}

func writeDirection(w *bufio.Writer, u flow.DirectionUsage) {
	fmt.Fprintf(w, "  %s: %.2f of %.2f\n", u.Edge, u.Total, u.Capacity)
	for _, cf := range u.ByCommodity {
		fmt.Fprintf(w, "    %s: %.2f\n", cf.Commodity, cf.Value)
	}
}
