package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abyssdigger/modlgr/config"
)

func newLevelsCmd(opts *rootOptions) *cobra.Command {
	var format string
	c := &cobra.Command{
		Use:   "levels",
		Short: "Dumps the effective file and level table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.ParseFormat(format)
			if err != nil {
				return err
			}
			l, err := opts.newLogger()
			if err != nil {
				return err
			}
			defer l.Close()
			data, err := config.FromLogger(l).Marshal(f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	c.Flags().StringVar(&format, "format", "yaml", "output format (yaml or toml)")
	return c
}
