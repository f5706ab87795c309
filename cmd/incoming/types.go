package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/incoming/pkg/schemafile"
)

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the field types available in schema documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, t := range schemafile.Types() {
				fmt.Fprintln(a.stdout, t)
			}
			return nil
		},
	}
}
