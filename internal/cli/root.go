// Package cli implements storectl, the maintenance tool for the attendance
// document.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ukdtimers/internal/config"
	"ukdtimers/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Backend  string
	File     string
	Bolt     string
	MySQLDSN string
}

// ValidBackends defines the backends a command can open.
var ValidBackends = []string{store.BackendFile, store.BackendBolt, store.BackendMySQL}

// NewRootCommand creates the root command. Flag defaults come from the same
// environment the server reads.
func NewRootCommand() *cobra.Command {
	cfg := config.Load()
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "storectl",
		Short: "Maintain the UKD absence document",
		Long:  "storectl migrates, seeds, converts and syncs the attendance document behind the UKD absence tracker.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidBackend(opts.Backend) {
				return fmt.Errorf("invalid backend %q: must be one of %v", opts.Backend, ValidBackends)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Backend, "backend", cfg.StoreBackend, "store backend (file|bolt|mysql)")
	cmd.PersistentFlags().StringVar(&opts.File, "file", cfg.DatabaseFile, "JSON document path for the file backend")
	cmd.PersistentFlags().StringVar(&opts.Bolt, "bolt", cfg.BoltPath, "database path for the bolt backend")
	cmd.PersistentFlags().StringVar(&opts.MySQLDSN, "mysql-dsn", cfg.MySQLDSN, "DSN for the mysql backend")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewSyncCommand(opts, cfg.SheetExportURL))

	return cmd
}

func (o *RootOptions) storeOptions() store.Options {
	return store.Options{
		Backend:  o.Backend,
		FilePath: o.File,
		BoltPath: o.Bolt,
		MySQLDSN: o.MySQLDSN,
	}
}

func (o *RootOptions) open() (store.Store, error) {
	s, err := store.Open(o.storeOptions())
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", o.Backend, err)
	}
	return s, nil
}

func isValidBackend(backend string) bool {
	for _, b := range ValidBackends {
		if b == backend {
			return true
		}
	}
	return false
}
