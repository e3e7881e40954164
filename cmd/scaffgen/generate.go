package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scafflab/scaffgen/pkg/catalog"
	"github.com/scafflab/scaffgen/pkg/materialize"
)

func newGenerateCmd() *cobra.Command {
	var (
		target   string
		manifest string
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the catalog's files under a target directory",
		Long: `Write every catalog entry under the target directory, creating missing
parent directories. Existing files at entry paths are overwritten; nothing
else is touched and nothing is ever deleted.

Entries are written in catalog order. Per-entry failures (a path escaping
the target, a directory that cannot be created, a failed write) do not stop
the run: every entry is attempted and every problem is reported. The command
exits non-zero if any entry failed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(manifest)
			if err != nil {
				return err
			}

			var rep materialize.Reporter = materialize.NewConsoleReporter()
			if quiet {
				rep = materialize.NoopReporter{}
			}

			report, err := materialize.New(nil, rep).Materialize(target, cat)
			if err != nil {
				return err
			}
			if report.Failed() {
				return fmt.Errorf("%d of %d files failed", report.Failures(), report.Total())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", "Directory to generate into (required)")
	cmd.Flags().StringVarP(&manifest, "manifest", "m", "", "Catalog manifest file (.toml, .yaml); defaults to the built-in catalog")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress per-file progress output")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

// loadCatalog picks the manifest catalog when one is given, otherwise the
// compiled-in one.
func loadCatalog(manifest string) (*catalog.Catalog, error) {
	if manifest == "" {
		return catalog.Builtin(), nil
	}
	return catalog.LoadManifest(manifest)
}
