package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newLintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Check schema documents and list the schemas they declare",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := a.loadRegistry(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SCHEMA\tFIELDS\tREQUIRED\tSTRICT\tRECURSIVE")
			for _, name := range reg.Names() {
				s := reg.MustLookup(name)
				fmt.Fprintf(tw, "%s\t%d\t%t\t%t\t%t\n",
					s.Name(), len(s.Fields()), s.RequiredDefault(), s.Strict(), s.Recursive())
			}
			return tw.Flush()
		},
	}
}
