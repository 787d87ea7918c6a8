// Package cli implements the ledgerctl command line.
//
// Command tree:
//
//	ledgerctl
//	├── import <batch.xlsx>
//	├── sort
//	├── track
//	├── payment
//	├── summary
//	├── analytics
//	└── serve
package cli

import (
	"fmt"
	"os"

	"parcel-ledger/internal/app"
	"parcel-ledger/internal/core/config"
	"parcel-ledger/internal/core/logger"
	"parcel-ledger/internal/features/enrichment/domain"

	"github.com/spf13/cobra"
)

// options holds the persistent flags and the application built from them.
type options struct {
	// configDir is the directory searched for the .env file.
	configDir string
	// verbose forces debug logging regardless of LOG_LEVEL.
	verbose bool

	app *app.App
}

// NewRootCommand builds the ledgerctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Maintain and enrich the COD shipment ledger",
		Long: `ledgerctl keeps the consolidated shipment ledger workbook up to date.

It imports scraped loadsheet batches, enriches rows with tracking and payment
data from the Leopards Courier merchant API, and reports on outstanding COD.

Example Usage:
  ledgerctl import batch.xlsx    # Merge a loadsheet batch into the ledger
  ledgerctl track                # Refresh status and location of undelivered rows
  ledgerctl payment              # Refresh payment state of unpaid rows
  ledgerctl summary              # Print COD totals`,
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(
		&opts.configDir,
		"config",
		".",
		"Directory containing the .env configuration file",
	)
	root.PersistentFlags().BoolVarP(
		&opts.verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)

	root.AddCommand(
		newImportCommand(opts),
		newSortCommand(opts),
		newSyncCommand(opts, "track", domain.ModeTracking, "Refresh status, location and booking date of undelivered rows"),
		newSyncCommand(opts, "payment", domain.ModePayment, "Refresh the payment state of unpaid rows"),
		newSummaryCommand(opts),
		newAnalyticsCommand(opts),
		newServeCommand(opts),
	)

	return root
}

// load reads the configuration, initializes logging and builds the services.
func (o *options) load() error {
	cfg, err := config.Load(o.configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	o.app = app.New(cfg)
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
