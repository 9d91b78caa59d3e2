package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ukdtimers/internal/model"
	"ukdtimers/internal/repository"
	"ukdtimers/internal/service"
	"ukdtimers/internal/sheets"
)

// operatorSession is the identity storectl acts under.
var operatorSession = model.Session{Role: model.RoleAdmin, Username: "storectl"}

// NewSyncCommand creates the sync command.
func NewSyncCommand(rootOpts *RootOptions, defaultURL string) *cobra.Command {
	var sheetURL string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Import students and absences from the attendance sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootOpts.open()
			if err != nil {
				return err
			}
			defer s.Close()

			svc := service.NewSyncService(repository.NewDocumentRepository(s), sheets.NewClient(sheetURL, sheets.DefaultTimeout))
			result, err := svc.SyncSheets(cmd.Context(), operatorSession)
			if err != nil {
				return fmt.Errorf("%s: %w", result.Message, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&sheetURL, "url", defaultURL, "sheet link or CSV export URL")
	return cmd
}
