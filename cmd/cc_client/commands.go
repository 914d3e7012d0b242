package main

import (
	"fmt"

	"github.com/SscSPs/currency_converter_app/internal/utils"
	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	var showHistory bool

	cmd := &cobra.Command{
		Use:     "convert <amount> <currency>",
		Short:   "Convert a USD amount and record it",
		Example: "  cc_client convert 100 EUR",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.converter.Submit(cmd.Context(), args[0], args[1])
			if err != nil {
				errorColor.Fprintln(cmd.ErrOrStderr(), out.Message)
				return err
			}

			successColor.Fprintln(cmd.OutOrStdout(), out.Message)
			if showHistory {
				if out.HistoryMessage != "" {
					errorColor.Fprintln(cmd.ErrOrStderr(), out.HistoryMessage)
				}
				for _, c := range out.History {
					fmt.Fprintln(cmd.OutOrStdout(), utils.FormatHistoryLine(c))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showHistory, "history", false, "print the refreshed history after converting")
	return cmd
}

func newHistoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List past conversions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, message, err := a.converter.LoadHistory(cmd.Context())
			if err != nil {
				errorColor.Fprintln(cmd.ErrOrStderr(), message)
				return err
			}
			if len(entries) == 0 {
				mutedColor.Fprintln(cmd.OutOrStdout(), "No conversions yet")
				return nil
			}
			for _, c := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), utils.FormatHistoryLine(c))
			}
			return nil
		},
	}
}

func newCurrenciesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List the target currencies the backend accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.backend.ListCurrencies(cmd.Context())
			if err != nil {
				errorColor.Fprintln(cmd.ErrOrStderr(), "Failed to fetch currencies")
				return err
			}
			for _, c := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-3s %s\n", c.CurrencyCode, c.Symbol, c.Name)
			}
			return nil
		},
	}
}
