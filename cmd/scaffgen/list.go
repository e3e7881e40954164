package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var manifest string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog's entries without writing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(manifest)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range cat.Entries() {
				fmt.Fprintf(w, "%s\t%d bytes\n", e.Path, len(e.Content))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d files", cat.Size())
			if dups := cat.Duplicates(); len(dups) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), ", %d duplicate paths", len(dups))
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifest, "manifest", "m", "", "Catalog manifest file (.toml, .yaml); defaults to the built-in catalog")

	return cmd
}
