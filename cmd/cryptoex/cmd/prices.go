package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"cryptoex/cmd/cryptoex/internal/output"
	"cryptoex/internal/presenter"
)

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Show top cryptocurrencies",
	Long:  "List the top assets by market cap with 24h change, market cap and volume.",
	RunE:  runPrices,
}

func init() {
	rootCmd.AddCommand(pricesCmd)
}

func runPrices(cmd *cobra.Command, _ []string) error {
	f, err := getFormat()
	if err != nil {
		return err
	}

	assets, err := newClient().Prices(cmd.Context())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if f == "json" {
		return output.JSON(w, assets)
	}

	rows := make([][]string, 0, len(assets))
	for _, r := range presenter.Prices(assets) {
		rows = append(rows, []string{
			strconv.Itoa(r.Rank), r.Name, r.Symbol, r.Price,
			output.Change(r.Change24h, r.Up), r.MarketCap, r.Volume,
		})
	}
	output.Table(w, []string{"#", "Name", "Symbol", "Price", "24h", "Market Cap", "Volume"}, rows)
	return nil
}
