package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/client"
	"github.com/SscSPs/currency_converter_app/internal/tui/converter"
	"github.com/SscSPs/currency_converter_app/pkg/config"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen, color.Bold)
	mutedColor   = color.New(color.Faint)
)

// app is what every subcommand needs once flags are parsed.
type app struct {
	cfg       *config.ClientConfig
	logger    *slog.Logger
	backend   *client.BackendClient
	converter *client.Converter
}

type rootFlags struct {
	apiURL   string
	ratesURL string
	timeout  time.Duration
	verbose  bool
	noColor  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	a := &app{}

	cmd := &cobra.Command{
		Use:   "cc_client",
		Short: "Convert USD into other currencies and keep a history",
		Long: `A terminal client for the currency converter backend.

Run without arguments for the interactive form, or use the convert and
history subcommands from scripts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Flags(), flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(converter.New(cmd.Context(), a.converter), tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&flags.apiURL, "api-url", "", "backend API base URL (default from API_BASE_URL or "+config.DefaultAPIBaseURL+")")
	cmd.PersistentFlags().StringVar(&flags.ratesURL, "rates-url", "", "exchange-rate provider URL (default from RATES_URL)")
	cmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0, "timeout for each outbound request (default from HTTP_TIMEOUT or 10s)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log debug output to stderr")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(newConvertCmd(a), newHistoryCmd(a), newCurrenciesCmd(a))
	return cmd
}

// setup loads configuration, lets explicitly set flags win, and builds the clients.
func (a *app) setup(fs *pflag.FlagSet, flags *rootFlags) error {
	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)

	if flags.noColor {
		color.NoColor = true
	}

	cfg, err := config.LoadClientConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if fs.Changed("api-url") {
		cfg.APIBaseURL = flags.apiURL
	}
	if fs.Changed("rates-url") {
		cfg.RatesURL = flags.ratesURL
	}
	if fs.Changed("timeout") {
		if flags.timeout <= 0 {
			return fmt.Errorf("--timeout must be positive")
		}
		cfg.HTTPTimeout = flags.timeout
	}
	a.cfg = cfg

	a.logger.Debug("Client configured",
		slog.String("api_base_url", cfg.APIBaseURL),
		slog.String("rates_url", cfg.RatesURL),
		slog.Duration("timeout", cfg.HTTPTimeout),
	)

	a.backend = client.NewBackendClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	a.converter = client.NewConverter(client.NewRateClient(cfg.RatesURL, cfg.HTTPTimeout), a.backend, a.logger)
	return nil
}
