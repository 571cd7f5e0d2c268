package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mcflow/metrics"
	"github.com/katalvlaran/mcflow/report"
	"github.com/katalvlaran/mcflow/scenario"
)

func newCompareCmd(a *app) *cobra.Command {
	var capacity float64
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Solve both scenarios and report the distance reduction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("capacity") {
				a.cfg.Shortcut.Capacity = capacity
			}
			in, err := a.cfg.Input()
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			opts := append(a.cfg.RunnerOptions(),
				scenario.WithLogger(a.log),
				scenario.WithMetrics(metrics.New(reg)),
			)
			if cmd.Flags().Changed("parallel") {
				opts = append(opts, scenario.WithParallel(a.flagParallel))
			}
			cmp, runErr := scenario.NewRunner(opts...).Run(cmd.Context(), in)
			if a.flagMetrics != "" {
				if err := prometheus.WriteToTextfile(a.flagMetrics, reg); err != nil {
					a.log.WithError(err).WithField("path", a.flagMetrics).Error("failed to write metrics")
				}
			}
			if runErr != nil {
				return runErr
			}
			if err := report.Write(a.stdout, a.format, cmp); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			a.log.WithFields(logrus.Fields{"run_id": cmp.RunID, "computable": cmp.Computable}).Debug("report written")

			return nil
		},
	}
	cmd.Flags().Float64Var(&capacity, "capacity", 0, "Override the shortcut capacity")
	cmd.Flags().BoolVar(&a.flagParallel, "parallel", false, "Solve both scenarios concurrently")
	cmd.Flags().StringVar(&a.flagMetrics, "metrics-out", "", "Write Prometheus metrics to this textfile")

	return cmd
}
