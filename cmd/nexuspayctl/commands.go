package main

import (
	"encoding/json"
	"fmt"
	"os"

	"nexuspay/internal/adapter/http/dto/request"
	"nexuspay/internal/domain/entities"
	"nexuspay/internal/infrastructure/config"
	"nexuspay/internal/infrastructure/payments"
	"nexuspay/internal/usecase"
	"nexuspay/internal/usecase/interfaces"

	"github.com/spf13/cobra"
)

// app holds the use cases every subcommand runs against. It is built per
// invocation from the same configuration the API server reads.
type app struct {
	payments    *usecase.PaymentUseCase
	preferences *usecase.PreferenceUseCase
}

func loadApp(cmd *cobra.Command) (*app, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	var gateway interfaces.IPaymentGateway
	if mp, err := payments.NewMercadoPagoGateway(cfg.AccessToken); err == nil {
		gateway = mp
	}

	return &app{
		payments:    usecase.NewPaymentUseCase(gateway),
		preferences: usecase.NewPreferenceUseCase(gateway, cfg.AppURL, cfg.StatementDescriptor),
	}, nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "nexuspayctl",
		Short:         "Operate Mercado Pago checkouts and payments from the command line",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("config", os.Getenv("CONFIG_FILE"), "Path to the YAML configuration file")

	rootCmd.AddCommand(preferenceCmd())
	rootCmd.AddCommand(paymentCmd())
	rootCmd.AddCommand(refundCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func preferenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preference",
		Short: "Manage checkout preferences",
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a checkout preference for a single item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			title, _ := cmd.Flags().GetString("title")
			quantity, _ := cmd.Flags().GetInt("quantity")
			price, _ := cmd.Flags().GetFloat64("price")
			currency, _ := cmd.Flags().GetString("currency")
			email, _ := cmd.Flags().GetString("payer-email")
			reference, _ := cmd.Flags().GetString("external-reference")

			items := []entities.Item{{Title: title, Quantity: quantity, UnitPrice: price, CurrencyID: currency}}
			var payer *entities.Payer
			if email != "" {
				payer = &entities.Payer{Email: email}
			}

			pref, err := a.preferences.CreateCheckoutPreference(cmd.Context(), items, payer, reference)
			if err != nil {
				return err
			}
			return printJSON(cmd, pref)
		},
	}
	create.Flags().String("title", "", "Item title")
	create.Flags().Int("quantity", 1, "Item quantity")
	create.Flags().Float64("price", 0, "Unit price")
	create.Flags().String("currency", "", "Currency id (default ARS)")
	create.Flags().String("payer-email", "", "Payer email")
	create.Flags().String("external-reference", "", "External reference (generated when empty)")

	cmd.AddCommand(create)
	return cmd
}

func paymentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Look up payments",
	}

	get := &cobra.Command{
		Use:   "get [payment-id]",
		Short: "Fetch a payment by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			p, err := a.payments.GetPaymentStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, p)
		},
	}

	search := &cobra.Command{
		Use:   "search",
		Short: "Search payments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			var q request.PaymentSearchQuery
			q.Status, _ = cmd.Flags().GetString("status")
			q.ExternalReference, _ = cmd.Flags().GetString("external-reference")
			q.Limit, _ = cmd.Flags().GetInt("limit")
			q.Offset, _ = cmd.Flags().GetInt("offset")
			filter := q.ToFilter()

			if stats, _ := cmd.Flags().GetBool("stats"); stats {
				s, err := a.payments.DashboardStats(cmd.Context(), filter)
				if err != nil {
					return err
				}
				return printJSON(cmd, s)
			}

			page, err := a.payments.ListPayments(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return printJSON(cmd, page)
		},
	}
	search.Flags().String("status", "", "Payment status")
	search.Flags().String("external-reference", "", "External reference")
	search.Flags().IntP("limit", "n", entities.DefaultPaymentSearchLimit, "Maximum results")
	search.Flags().Int("offset", 0, "Results to skip")
	search.Flags().Bool("stats", false, "Print dashboard statistics for the page instead of the payments")

	cmd.AddCommand(get, search)
	return cmd
}

func refundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refund [payment-id]",
		Short: "Refund a payment, fully unless --amount is given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			var amount *float64
			if cmd.Flags().Changed("amount") {
				v, _ := cmd.Flags().GetFloat64("amount")
				amount = &v
			}
			r, err := a.payments.ProcessRefund(cmd.Context(), args[0], amount)
			if err != nil {
				return err
			}
			return printJSON(cmd, r)
		},
	}
	cmd.Flags().Float64("amount", 0, "Partial refund amount")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), Version)
			return err
		},
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
