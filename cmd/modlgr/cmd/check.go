package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	filter := &filterOptions{}
	c := &cobra.Command{
		Use:   "check",
		Short: "Prints whether a message would be written",
		Args:  cobra.NoArgs,
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
			verdict := "filtered"
			if l.IsWritable(filter.module, sev, typ) {
				verdict = "writable"
			}
			fmt.Fprintln(cmd.OutOrStdout(), verdict)
			return nil
		},
	}
	filter.register(c)
	return c
}
