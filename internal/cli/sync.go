package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"parcel-ledger/internal/features/enrichment/domain"

	"github.com/spf13/cobra"
)

// newSyncCommand runs an enrichment pass in the foreground.
// Interrupting it stops the pass and keeps the rows already enriched.
func newSyncCommand(opts *options, use string, mode domain.Mode, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()

			err := opts.app.Engine.Execute(ctx, mode, func(e domain.Event) {
				switch e.Kind {
				case domain.EventProgress:
					fmt.Fprintf(errOut, "\r[%3d%%]", e.Progress)
				case domain.EventError:
					fmt.Fprintf(errOut, "\n! %s\n", e.Message)
				case domain.EventResult:
					fmt.Fprintf(out, "\n%s\n", e.Message)
				}
			})
			if err != nil {
				return fmt.Errorf("%s sync aborted: %w", mode, err)
			}
			return nil
		},
	}
}
