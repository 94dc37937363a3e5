package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cryptoex/cmd/cryptoex/internal/output"
	numfmt "cryptoex/internal/format"
	"cryptoex/internal/presenter"
	"cryptoex/internal/services"
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Show holdings valued at live prices",
	RunE:  runPortfolio,
}

func init() {
	rootCmd.AddCommand(portfolioCmd)
}

func runPortfolio(cmd *cobra.Command, _ []string) error {
	f, err := getFormat()
	if err != nil {
		return err
	}

	view, err := newClient().Portfolio(cmd.Context())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if f == "json" {
		return output.JSON(w, view)
	}

	renderPortfolio(w, view)
	return nil
}

func renderPortfolio(w io.Writer, view *services.PortfolioView) {
	rows := make([][]string, 0, len(view.Assets))
	for _, r := range presenter.Portfolio(view.Assets) {
		rows = append(rows, []string{
			r.Name, r.Amount, r.Price, output.Change(r.Change24h, r.Up),
			r.Value, r.Allocation, r.PnL, r.PnLPercentage,
		})
	}
	output.Table(w, []string{"Asset", "Amount", "Price", "24h", "Value", "Allocation", "PnL", "PnL %"}, rows)

	output.KeyValue(w, [][]string{
		{"Total value", numfmt.Currency(view.TotalValue)},
		{"Total PnL", numfmt.Currency(view.TotalPnL)},
	})
	if len(view.Missing) > 0 {
		output.Warning(w, fmt.Sprintf("No live price for: %s", strings.Join(view.Missing, ", ")))
	}
}
