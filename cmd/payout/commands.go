package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"payout-gateway/application"
	"payout-gateway/domain/entities"
	"payout-gateway/domain/entities/payout"
	"payout-gateway/utils/configs"
	"payout-gateway/utils/gpooling"
	"payout-gateway/utils/helpers"
	"payout-gateway/utils/logger"
)

// appBuilder turns the loaded config into a ready application. The returned
// func releases whatever the application holds.
type appBuilder func(config *configs.Config) (*application.PayoutApplication, func(), error)

func newApplication(config *configs.Config) (*application.PayoutApplication, func(), error) {
	lg, err := logger.NewLogger(config.ENV)
	if err != nil {
		return nil, nil, err
	}
	pool, err := gpooling.NewPooling(config.PoolSize(), lg)
	if err != nil {
		return nil, nil, err
	}
	app, err := application.NewPayoutApplication(config, lg, pool)
	if err != nil {
		pool.Release()
		return nil, nil, err
	}
	return app, func() {
		app.WaitNotifications()
		pool.Release()
		_ = lg.Sync()
	}, nil
}

func newRootCmd(build appBuilder) *cobra.Command {
	v := configs.NewViper()
	var configPath string

	root := &cobra.Command{
		Use:           "payout",
		Short:         "Send and inquire THB payouts through the 1-2-Pay gateway",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.String("api-key", "", "gateway API key (env API_KEY)")
	flags.String("partner-code", "", "partner code (env PARTNER_CODE)")
	flags.String("channel", "", "channel (env CHANNEL)")
	flags.String("base-url", "", "gateway base URL (env PAYOUT_BASE_URL)")
	flags.String("env", "", "production or development logging (env PAYOUT_ENV)")
	flags.StringVar(&configPath, "config", ".", "directory holding an optional config.json")

	for key, flag := range map[string]string{
		"api_key":      "api-key",
		"partner_code": "partner-code",
		"channel":      "channel",
		"base_url":     "base-url",
		"env":          "env",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	// commands that talk to the gateway share this loader
	load := func() (*application.PayoutApplication, func(), error) {
		config, err := configs.Load(v, configPath)
		if err != nil {
			return nil, nil, err
		}
		if err := config.Validate(); err != nil {
			return nil, nil, err
		}
		return build(config)
	}

	root.AddCommand(newTransferCmd(load), newInqueryCmd(load), newBanksCmd())
	return root
}

func newTransferCmd(load func() (*application.PayoutApplication, func(), error)) *cobra.Command {
	var (
		bankAcc, bank, amount, accName, mobileNo, transactionBy, ref1 string
		ref2, ref3, ref4, lineToken, email                              string
	)

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Send money to a Thai bank account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := entities.BankOfAcronym(bank)
			if err != nil {
				return fmt.Errorf("--bank %q: %w", bank, err)
			}
			value, err := decimal.NewFromString(strings.ReplaceAll(amount, ",", ""))
			if err != nil {
				return fmt.Errorf("--amount %q: %w", amount, err)
			}

			req := payout.TransferReq{
				BankAcc:       bankAcc,
				Bank:          b,
				AccName:       accName,
				Amount:        value,
				MobileNo:      mobileNo,
				TransactionBy: transactionBy,
				Ref1:          ref1,
			}
			optional := map[string]**string{
				"ref2":       &req.Ref2,
				"ref3":       &req.Ref3,
				"ref4":       &req.Ref4,
				"line-token": &req.LineToken,
				"email":      &req.Email,
			}
			values := map[string]string{
				"ref2":       ref2,
				"ref3":       ref3,
				"ref4":       ref4,
				"line-token": lineToken,
				"email":      email,
			}
			for name, field := range optional {
				if cmd.Flags().Changed(name) {
					s := values[name]
					*field = &s
				}
			}

			app, release, err := load()
			if err != nil {
				return err
			}
			defer release()

			res, err := app.Transfer(cmd.Context(), req)
			if err != nil {
				return err
			}
			printTransfer(cmd.OutOrStdout(), req, res, app.Now())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&bankAcc, "bankacc", "", "receiving bank account")
	f.StringVar(&bank, "bank", "", "receiving bank acronym, see `payout banks`")
	f.StringVar(&amount, "amount", "", "amount in THB, e.g. 1000.50")
	f.StringVar(&accName, "accname", "", "account owner name")
	f.StringVar(&mobileNo, "mobileno", "", "Thai mobile number")
	f.StringVar(&transactionBy, "transaction-by", "", "who makes the transaction")
	f.StringVar(&ref1, "ref1", "", "your transaction id, 1 to 30 characters")
	f.StringVar(&ref2, "ref2", "", "optional reference")
	f.StringVar(&ref3, "ref3", "", "optional reference")
	f.StringVar(&ref4, "ref4", "", "optional reference")
	f.StringVar(&lineToken, "line-token", "", "optional LINE notify token")
	f.StringVar(&email, "email", "", "optional email")
	for _, name := range []string{"bankacc", "bank", "amount", "accname", "mobileno", "transaction-by", "ref1"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newInqueryCmd(load func() (*application.PayoutApplication, func(), error)) *cobra.Command {
	var refs []string

	cmd := &cobra.Command{
		Use:     "inquery",
		Aliases: []string{"query"},
		Short:   "Look up payouts by ref1",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, release, err := load()
			if err != nil {
				return err
			}
			defer release()

			out := cmd.OutOrStdout()
			if len(refs) == 1 {
				res, err := app.Query(cmd.Context(), payout.QueryReq{Ref1: refs[0]})
				if err != nil {
					return err
				}
				printQuery(out, res, app.Now())
				return nil
			}

			reqs := make([]payout.QueryReq, 0, len(refs))
			for _, ref := range refs {
				reqs = append(reqs, payout.QueryReq{Ref1: ref})
			}
			failed := 0
			for _, outcome := range app.QueryMany(cmd.Context(), reqs) {
				if outcome.Err != nil {
					failed++
					app.Logger.Warn("inquiry failed", zap.String("ref1", outcome.Ref1), zap.Error(outcome.Err))
					fmt.Fprintf(out, "%s: %v\n\n", outcome.Ref1, outcome.Err)
					continue
				}
				printQuery(out, outcome.Result, app.Now())
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d inquiries failed", failed, len(refs))
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&refs, "ref1", nil, "ref1 of a payout, repeat for several")
	_ = cmd.MarkFlagRequired("ref1")
	return cmd
}

func newBanksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "banks",
		Short: "List the supported banks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, b := range entities.Banks() {
				fmt.Fprintf(out, "%03d  %-6s %s\n", b.Code(), b.Acronym(), b.DisplayName())
			}
			return nil
		},
	}
}

func printTransfer(out io.Writer, req payout.TransferReq, res payout.TransferRes, now time.Time) {
	fmt.Fprintf(out, "Payout ref:     %s\n", res.PayoutRef)
	fmt.Fprintf(out, "Transaction id: %s\n", res.TransactionID)
	fmt.Fprintf(out, "Time:           %s\n", helpers.FormatTime(res.TransactionDateTime, now))
	fmt.Fprintf(out, "Amount:         %s to %s %s\n", helpers.FormatTHB(req.Amount), req.Bank.Acronym(), req.BankAcc)
	fmt.Fprintf(out, "QR:             %s\n", res.QRString)
}

func printQuery(out io.Writer, res payout.QueryRes, now time.Time) {
	fmt.Fprintf(out, "Ref1:           %s\n", res.Ref1)
	fmt.Fprintf(out, "Account:        %s %s (%s)\n", res.Bank.Acronym(), res.BankAcc, res.AccName)
	fmt.Fprintf(out, "Amount:         %s\n", helpers.FormatTHB(res.Amount))
	fmt.Fprintf(out, "Created:        %s\n", helpers.FormatTime(res.Created, now))
	fmt.Fprintf(out, "Transferred:    %s\n", helpers.FormatTime(res.Transfer, now))
	fmt.Fprintf(out, "Bank txn id:    %s\n", res.TransferTransactionID)
	for i, ref := range []*string{res.Ref2, res.Ref3, res.Ref4} {
		if ref != nil {
			fmt.Fprintf(out, "Ref%d:           %s\n", i+2, *ref)
		}
	}
	fmt.Fprintln(out)
}
