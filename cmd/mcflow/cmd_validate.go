package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mcflow/scenario"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration and list warnings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.cfg.Input()
			if err != nil {
				return err
			}
			for _, kind := range []scenario.Kind{scenario.Baseline, scenario.Augmented} {
				m, err := scenario.Model(kind, in)
				if err != nil {
					return err
				}
				st := m.Problem.Stats()
				fmt.Fprintf(a.stdout, "%s: %d rows, %d columns, %d nonzeros\n", kind, st.Rows, st.Cols, st.NonZeros)
			}
			warnings := in.Commodities.Lint(in.Network, in.Demand, in.Distances)
			for _, w := range warnings {
				fmt.Fprintf(a.stdout, "warning: %s\n", w)
			}
			fmt.Fprintf(a.stdout, "configuration ok (%d warnings)\n", len(warnings))

			return nil
		},
	}
}
