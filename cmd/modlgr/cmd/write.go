package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

func newWriteCmd(opts *rootOptions) *cobra.Command {
	filter := &filterOptions{}
	c := &cobra.Command{
		Use:   "write [flags] message...",
		Short: "Writes one message if it passes the level filter",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sev, typ, err := filter.parse()
			if err != nil {
				return err
			}
			l, err := opts.newLogger()
			if err != nil {
				return err
			}
			defer l.Close()
			return l.LogE(strings.Join(args, " "), filter.module, sev, typ)
		},
	}
	filter.register(c)
	return c
}
