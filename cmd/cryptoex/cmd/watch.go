package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cryptoex/cmd/cryptoex/internal/output"
	"cryptoex/internal/logger"
	"cryptoex/internal/poller"
	"cryptoex/internal/presenter"
	"cryptoex/internal/services"
)

const clearScreen = "\033[H\033[2J"

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live dashboard",
	Long:  "Re-render the dashboard every poll interval until interrupted.",
	RunE:  runWatch,
}

var intervalFlag time.Duration

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVarP(&intervalFlag, "interval", "i", 0, "refresh interval (default poll_interval, 60s)")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	interval := intervalFlag
	if interval <= 0 {
		interval = viper.GetDuration("poll_interval")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := cmd.OutOrStdout()
	c := newClient()
	err := poller.Run(ctx, dashboardTask(w, c.Dashboard, interval), logger.Named("watch"))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func dashboardTask(w io.Writer, fetch func(context.Context) (*services.DashboardView, error), interval time.Duration) poller.Task[*services.DashboardView] {
	return poller.Task[*services.DashboardView]{
		Name:     "dashboard",
		Interval: interval,
		Fetch:    fetch,
		Apply: func(view *services.DashboardView) {
			fmt.Fprint(w, clearScreen)
			renderDashboard(w, view, time.Now())
		},
		OnError: func(err error) {
			output.Warning(w, "refresh failed: "+err.Error())
		},
	}
}

func renderDashboard(w io.Writer, view *services.DashboardView, now time.Time) {
	output.Header(w, "CryptoEx Dashboard")
	output.Info(w, "Updated "+now.Format("15:04:05"))
	fmt.Fprintln(w)

	d := view.Display
	output.KeyValue(w, [][]string{
		{"Estimated balance", d.EstimatedBalance},
		{"Daily change", fmt.Sprintf("%s (%s)", d.DailyChange, output.Change(d.DailyChangePct, view.DailyChange.Value >= 0))},
		{"Portfolio value", d.PortfolioValue},
		{"Portfolio PnL", fmt.Sprintf("%s (%s)", d.PortfolioPnL, output.Change(d.PortfolioPnLPct, view.Portfolio.TotalPnL >= 0))},
	})
	fmt.Fprintln(w)

	renderPortfolio(w, &view.Portfolio)
	fmt.Fprintln(w)

	output.Header(w, "Recent orders")
	rows := make([][]string, 0, len(view.RecentOrders))
	for _, r := range presenter.Orders(view.RecentOrders, time.Local) {
		rows = append(rows, []string{r.Date, r.Pair, r.Side, r.Price, r.Amount, output.FormatStatus(r.Status)})
	}
	output.Table(w, []string{"Date", "Pair", "Side", "Price", "Amount", "Status"}, rows)
}
