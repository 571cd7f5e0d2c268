// Command mcflow compares the baseline and shortcut-augmented multi-commodity
// flow scenarios described by a TOML configuration.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mcflow/config"
	"github.com/katalvlaran/mcflow/report"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("mcflow version %s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("mcflow version %s-dev", version)
}

// app is the state shared by all subcommands of one invocation.
type app struct {
	flagConfig   string
	flagLevel    string
	flagFmt      string
	flagMetrics  string
	flagParallel bool

	cfg    *config.Config
	format report.Format
	log    *logrus.Logger
	stdout io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, log: logrus.New()}
	a.log.SetOutput(stderr)

	rootCmd := &cobra.Command{
		Use:     "mcflow",
		Short:   "mcflow — multi-commodity flow scenario comparison",
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVar(&a.flagConfig, "config", "", "TOML configuration file (default: embedded reference dataset)")
	rootCmd.PersistentFlags().StringVar(&a.flagLevel, "log-level", "", "Override [log] level: debug|info|warn|error")
	rootCmd.PersistentFlags().StringVar(&a.flagFmt, "format", "text", "Output format: text|yaml")

	rootCmd.AddCommand(newCompareCmd(a))
	rootCmd.AddCommand(newExportCmd(a))
	rootCmd.AddCommand(newValidateCmd(a))

	return rootCmd
}

// setup loads configuration and configures logging.
func (a *app) setup() error {
	var err error
	if a.flagConfig == "" {
		a.cfg = config.Default()
	} else if a.cfg, err = config.Load(a.flagConfig); err != nil {
		return err
	}
	if a.flagLevel != "" {
		a.cfg.Log.Level = a.flagLevel
	}
	if err = a.cfg.ApplyLogging(a.log); err != nil {
		return err
	}
	a.format, err = report.ParseFormat(a.flagFmt)

	return err
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
