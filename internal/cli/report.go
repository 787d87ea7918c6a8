package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// ledgerCurrency is the currency every COD amount is collected in.
const ledgerCurrency = "PKR"

// formatAmount renders a decimal amount in the ledger currency.
func formatAmount(amount decimal.Decimal) string {
	cur := money.GetCurrency(ledgerCurrency)
	factor := decimal.New(1, int32(cur.Fraction))
	return money.New(amount.Mul(factor).Round(0).IntPart(), ledgerCurrency).Display()
}

func newSummaryCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print COD totals and outstanding payments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := opts.app.Analytics.Summary(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Total COD\t%s\n", formatAmount(report.Total))
			fmt.Fprintf(w, "Pending payment\t%s\n", formatAmount(report.Pending))
			fmt.Fprintf(w, "Delivered, unpaid\t%s\n", formatAmount(report.DeliveredPending))
			fmt.Fprintf(w, "Pending records\t%d\n", report.PendingCount)
			return w.Flush()
		},
	}
}

func newAnalyticsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Print the shipment count per status bucket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shares, err := opts.app.Analytics.Breakdown(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "BUCKET\tCOUNT\tSHARE")
			for _, s := range shares {
				marker := ""
				if s.Emphasized {
					marker = " *"
				}
				fmt.Fprintf(w, "%s%s\t%d\t%.1f%%\n", s.Bucket, marker, s.Count, s.Percent)
			}
			return w.Flush()
		},
	}
}
