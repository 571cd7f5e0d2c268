package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mcflow/lp"
	"github.com/katalvlaran/mcflow/scenario"
)

func newExportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:       "export <baseline|augmented>",
		Short:     "Write the LP of one scenario in CPLEX LP format",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(scenario.Baseline), string(scenario.Augmented)},
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.cfg.Input()
			if err != nil {
				return err
			}
			m, err := scenario.Model(scenario.Kind(args[0]), in)
			if err != nil {
				return err
			}

			var w io.Writer = a.stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			if err := lp.WriteLP(w, m.Problem); err != nil {
				return fmt.Errorf("write lp: %w", err)
			}
			st := m.Problem.Stats()
			a.log.WithFields(logrus.Fields{
				"scenario": args[0], "rows": st.Rows, "cols": st.Cols, "path": out,
			}).Info("model exported")

			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file (default: stdout)")

	return cmd
}
