package main

import (
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check an options file and list every problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.loadOptions(args[0], "")
			if err != nil {
				return err
			}
			a.output.PrintSuccess("%s: %d panel(s), container #%s", args[0], len(opts.Panels), opts.Container)
			return nil
		},
	}
}
