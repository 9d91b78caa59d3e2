package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Rewrite the document with migration defaults applied",
		Long: `Load the document, which fills missing emails, avatars and rooms,
and save it back so the defaults are persisted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootOpts.open()
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := cmd.Context()
			doc := s.Load(ctx)
			if err := s.Save(ctx, doc); err != nil {
				return fmt.Errorf("save document: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrated %d users, %d subjects, %d absences\n",
				len(doc.Users), len(doc.Subjects), len(doc.Absences))
			return nil
		},
	}
}
