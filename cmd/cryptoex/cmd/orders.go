package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cryptoex/cmd/cryptoex/internal/output"
	"cryptoex/internal/presenter"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "View order history",
	RunE:  runOrders,
}

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Read the latest headlines",
	RunE:  runNews,
}

var (
	pageFlag  int
	limitFlag int
)

func init() {
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(newsCmd)

	for _, c := range []*cobra.Command{ordersCmd, newsCmd} {
		c.Flags().IntVar(&pageFlag, "page", 1, "page number")
		c.Flags().IntVar(&limitFlag, "limit", 10, "items per page")
	}
}

func runOrders(cmd *cobra.Command, _ []string) error {
	f, err := getFormat()
	if err != nil {
		return err
	}

	resp, err := newClient().Orders(cmd.Context(), pageFlag, limitFlag)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if f == "json" {
		return output.JSON(w, resp)
	}

	rows := make([][]string, 0, len(resp.Data))
	for _, r := range presenter.Orders(resp.Data, time.Local) {
		rows = append(rows, []string{r.Date, r.Pair, r.Side, r.Type, r.Price, r.Amount, r.Total, output.FormatStatus(r.Status)})
	}
	output.Table(w, []string{"Date", "Pair", "Side", "Type", "Price", "Amount", "Total", "Status"}, rows)
	output.Info(w, fmt.Sprintf("Page %d of %d (%d orders)", resp.Page, resp.TotalPages, resp.TotalItems))
	return nil
}

func runNews(cmd *cobra.Command, _ []string) error {
	f, err := getFormat()
	if err != nil {
		return err
	}

	resp, err := newClient().News(cmd.Context(), pageFlag, limitFlag)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if f == "json" {
		return output.JSON(w, resp)
	}

	for _, r := range presenter.News(resp.Data, time.Now()) {
		output.Header(w, r.Title)
		output.Info(w, fmt.Sprintf("%s · %s · %s", r.Source, r.Category, r.Ago))
		fmt.Fprintln(w)
	}
	output.Info(w, fmt.Sprintf("Page %d of %d", resp.Page, resp.TotalPages))
	return nil
}
