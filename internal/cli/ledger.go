package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <batch.xlsx>",
		Short: "Merge a scraped loadsheet batch into the ledger",
		Long: `Merge a scraped loadsheet batch into the ledger.

The whole batch is rejected when any of its tracking ids already exists in the
ledger; the ledger file is left untouched in that case.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := opts.app.Ledger.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.Created {
				fmt.Fprintf(out, "Created ledger %s\n", opts.app.Config.Ledger.Path())
			}
			fmt.Fprintf(out, "Imported %d rows, ledger now holds %d rows\n", result.Added, result.Total)
			return nil
		},
	}
}

func newSortCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Sort ledger rows by booking date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := opts.app.Ledger.SortByBookingDate(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Sorted %d rows (%d without a booking date)\n", result.Rows, result.Undated)
			return nil
		},
	}
}
