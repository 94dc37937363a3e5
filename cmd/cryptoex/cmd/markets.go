package cmd

import (
	"github.com/spf13/cobra"

	"cryptoex/cmd/cryptoex/internal/client"
	"cryptoex/cmd/cryptoex/internal/output"
	"cryptoex/internal/models"
	"cryptoex/internal/presenter"
)

var marketsCmd = &cobra.Command{
	Use:   "markets",
	Short: "List trading pairs",
	Long:  "List spot, futures or options pairs, optionally filtered by quote asset and search text.",
	RunE:  runMarkets,
}

var (
	kindFlag   string
	quoteFlag  string
	searchFlag string
)

func init() {
	rootCmd.AddCommand(marketsCmd)

	marketsCmd.Flags().StringVarP(&kindFlag, "kind", "k", "spot", "market kind: spot, futures, options")
	marketsCmd.Flags().StringVarP(&quoteFlag, "quote", "q", "all", "quote asset: all, USDT, BTC, ETH")
	marketsCmd.Flags().StringVarP(&searchFlag, "search", "s", "", "match pair, base or quote")
}

func runMarkets(cmd *cobra.Command, _ []string) error {
	f, err := getFormat()
	if err != nil {
		return err
	}

	pairs, err := newClient().Markets(cmd.Context(), client.MarketsFilter{
		Kind:   kindFlag,
		Quote:  quoteFlag,
		Search: searchFlag,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if f == "json" {
		return output.JSON(w, pairs)
	}
	if len(pairs) == 0 {
		output.Info(w, "No markets match.")
		return nil
	}

	headers := []string{"Pair", "Last Price", "24h", "High", "Low", "Volume"}
	switch models.MarketKind(kindFlag) {
	case models.MarketKindFutures:
		headers = append(headers, "Leverage")
	case models.MarketKindOptions:
		headers = append(headers, "Type", "Strike", "Expiry")
	}

	rows := make([][]string, 0, len(pairs))
	for _, r := range presenter.Markets(pairs) {
		row := []string{r.Pair, r.LastPrice, output.Change(r.Change, r.Up), r.High, r.Low, r.Volume}
		switch models.MarketKind(r.Market) {
		case models.MarketKindFutures:
			row = append(row, r.Leverage)
		case models.MarketKindOptions:
			row = append(row, r.OptionType, r.Strike, r.Expiry)
		}
		rows = append(rows, row)
	}
	output.Table(w, headers, rows)
	return nil
}
