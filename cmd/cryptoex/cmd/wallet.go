package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cryptoex/cmd/cryptoex/internal/output"
	numfmt "cryptoex/internal/format"
	"cryptoex/internal/presenter"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Show wallet balances and recent transactions",
	RunE:  runWallet,
}

var walletSearchFlag string

func init() {
	rootCmd.AddCommand(walletCmd)

	walletCmd.Flags().StringVarP(&walletSearchFlag, "search", "s", "", "match asset name or symbol")
}

func runWallet(cmd *cobra.Command, _ []string) error {
	f, err := getFormat()
	if err != nil {
		return err
	}

	view, err := newClient().Wallet(cmd.Context(), walletSearchFlag)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if f == "json" {
		return output.JSON(w, view)
	}

	output.Header(w, "Balances")
	balances := make([][]string, 0, len(view.Assets))
	for _, r := range presenter.Wallet(view.Assets) {
		balances = append(balances, []string{r.Name, r.Symbol, r.Balance, r.Available, r.InOrder, r.Value})
	}
	output.Table(w, []string{"Asset", "Symbol", "Balance", "Available", "In Order", "Value"}, balances)
	output.KeyValue(w, [][]string{{"Total balance", numfmt.Currency(view.TotalBalance)}})
	fmt.Fprintln(w)

	output.Header(w, "Transactions")
	txs := make([][]string, 0, len(view.Transactions))
	for _, r := range presenter.Transactions(view.Transactions, time.Local) {
		txs = append(txs, []string{r.Date, r.Type, r.Amount, output.FormatStatus(r.Status), r.Fee, r.TxID})
	}
	output.Table(w, []string{"Date", "Type", "Amount", "Status", "Fee", "TxID"}, txs)
	return nil
}
