package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cryptoex/cmd/cryptoex/internal/client"
	"cryptoex/internal/logger"
)

var (
	cfgFile  string
	format   string
	apiURL   string
	logLevel string

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))
)

var rootCmd = &cobra.Command{
	Use:   "cryptoex",
	Short: "CryptoEx - mock crypto exchange in your terminal",
	Long: titleStyle.Render("CryptoEx CLI") + `

Live prices, markets, portfolio and wallet from a CryptoEx API server.

Get started:
  cryptoex prices            Top assets by market cap
  cryptoex markets --kind futures
  cryptoex portfolio         Holdings valued at live prices
  cryptoex watch             Live dashboard, refreshed every poll interval`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.cryptoex/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "table", "output format: table, json")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "CryptoEx API base URL")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "diagnostics on stderr: debug, info, warn, error (default error)")

	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("api_url", rootCmd.PersistentFlags().Lookup("api-url"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".cryptoex"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetDefault("api_url", "http://localhost:8080")
	viper.SetDefault("format", "table")
	viper.SetDefault("poll_interval", "60s")
	viper.SetDefault("log_level", "error")

	viper.SetEnvPrefix("cryptoex")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintln(os.Stderr, "Warning: could not read config file:", err)
	}

	initLogger(viper.GetString("log_level"))
}

// initLogger is replaced in tests.
var initLogger = func(level string) {
	logger.Init("development", level)
}

func getFormat() (string, error) {
	f := strings.ToLower(viper.GetString("format"))
	switch f {
	case "table", "json":
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q: use table or json", f)
}

// newClient is replaced in tests.
var newClient = client.New
