package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed <fixture.yaml>",
		Short: "Replace the document with a YAML fixture",
		Long: `Load users, subjects, absences and creators from a YAML fixture and
store them as the whole document. Refuses to overwrite a non-empty document
unless --force is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fixture, err := LoadFixture(args[0])
			if err != nil {
				return err
			}
			doc, err := fixture.Document()
			if err != nil {
				return err
			}

			s, err := rootOpts.open()
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := cmd.Context()
			current := s.Load(ctx)
			if !force && (len(current.Users) > 0 || len(current.Subjects) > 0 || len(current.Absences) > 0) {
				return errors.New("document is not empty, use --force to overwrite")
			}
			if err := s.Save(ctx, doc); err != nil {
				return fmt.Errorf("save document: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d users, %d subjects, %d absences\n",
				len(doc.Users), len(doc.Subjects), len(doc.Absences))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite a non-empty document")
	return cmd
}
