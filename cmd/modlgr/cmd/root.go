package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abyssdigger/modlgr"
	"github.com/abyssdigger/modlgr/config"
)

// options shared by all subcommands
type rootOptions struct {
	cfgFile string
	logFile string
}

// NewRootCmd builds the command tree. Every call returns fresh flags.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "modlgr",
		Short: "Per-module filtered file logger",
		Long: `modlgr writes timestamped lines to a log file, filtered by per-module
and per-type minimal severities.

Severities: MIN LOW NRM HGH MAX
Types:      TRC DBG INF WRN ERR (ALL as a level wildcard)`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "levels file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().StringVarP(&opts.logFile, "file", "f", "", "log file (overrides the config file)")

	rootCmd.AddCommand(newWriteCmd(opts), newCheckCmd(opts), newLevelsCmd(opts))
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

// newLogger creates a logger configured from the config file and the file
// flag. The logger has no output file if neither names one.
func (o *rootOptions) newLogger() (*modlgr.Logger, error) {
	l := modlgr.NewUnset()
	if o.cfgFile != "" {
		cfg, err := config.LoadFile(o.cfgFile)
		if err != nil {
			return nil, err
		}
		if err := cfg.Apply(l); err != nil {
			return nil, err
		}
	}
	if o.logFile != "" {
		if err := l.SetFile(o.logFile); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// message filter flags shared by write and check
type filterOptions struct {
	module   string
	severity string
	logtype  string
}

func (f *filterOptions) register(c *cobra.Command) {
	c.Flags().StringVarP(&f.module, "module", "m", modlgr.DEFAULT_MODULE, "module name")
	c.Flags().StringVarP(&f.severity, "severity", "s", "NRM", "message severity")
	c.Flags().StringVarP(&f.logtype, "type", "t", "INF", "message type")
}

func (f *filterOptions) parse() (modlgr.Severity, modlgr.LogType, error) {
	sev, err := modlgr.ParseSeverity(f.severity)
	if err != nil {
		return sev, 0, fmt.Errorf("invalid --severity: %w", err)
	}
	typ, err := modlgr.ParseLogType(f.logtype)
	if err != nil {
		return sev, typ, fmt.Errorf("invalid --type: %w", err)
	}
	return sev, typ, nil
}
