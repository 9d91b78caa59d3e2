package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ukdtimers/internal/store"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	To      string
	ToFile  string
	ToBolt  string
	ToMySQL string
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Copy the document into another backend",
		Long: `Load the document from the backend selected by the global flags and
save it into the backend selected by --to. Extra fields are carried over.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().StringVar(&opts.To, "to", "", "destination backend (file|bolt|mysql)")
	cmd.Flags().StringVar(&opts.ToFile, "to-file", "", "destination JSON path")
	cmd.Flags().StringVar(&opts.ToBolt, "to-bolt", "", "destination bolt path")
	cmd.Flags().StringVar(&opts.ToMySQL, "to-mysql-dsn", "", "destination mysql DSN")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runConvert(cmd *cobra.Command, rootOpts *RootOptions, opts *ConvertOptions) error {
	if !isValidBackend(opts.To) {
		return fmt.Errorf("invalid destination backend %q: must be one of %v", opts.To, ValidBackends)
	}
	if flag := missingDestination(opts); flag != "" {
		return fmt.Errorf("destination backend %s requires --%s", opts.To, flag)
	}
	dstOpts := store.Options{
		Backend:  opts.To,
		FilePath: opts.ToFile,
		BoltPath: opts.ToBolt,
		MySQLDSN: opts.ToMySQL,
	}
	if dstOpts == rootOpts.storeOptions() {
		return fmt.Errorf("source and destination are the same %s store", opts.To)
	}

	src, err := rootOpts.open()
	if err != nil {
		return err
	}
	doc := src.Load(cmd.Context())
	if err := src.Close(); err != nil {
		return fmt.Errorf("close source: %w", err)
	}

	dst, err := store.Open(dstOpts)
	if err != nil {
		return fmt.Errorf("open %s store: %w", opts.To, err)
	}
	defer dst.Close()

	if err := dst.Save(cmd.Context(), doc); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "copied %d users, %d subjects, %d absences from %s to %s\n",
		len(doc.Users), len(doc.Subjects), len(doc.Absences), rootOpts.Backend, opts.To)
	return nil
}

// missingDestination names the flag the chosen destination backend needs but
// did not get.
func missingDestination(opts *ConvertOptions) string {
	switch opts.To {
	case store.BackendFile:
		if opts.ToFile == "" {
			return "to-file"
		}
	case store.BackendBolt:
		if opts.ToBolt == "" {
			return "to-bolt"
		}
	case store.BackendMySQL:
		if opts.ToMySQL == "" {
			return "to-mysql-dsn"
		}
	}
	return ""
}
