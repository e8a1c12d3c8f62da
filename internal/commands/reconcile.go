package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/RHFBAH/donation-reconciler/internal/config"
	"github.com/RHFBAH/donation-reconciler/internal/importer"
	"github.com/RHFBAH/donation-reconciler/internal/model"
	"github.com/RHFBAH/donation-reconciler/internal/reconcile"
	"github.com/RHFBAH/donation-reconciler/internal/report"
	"github.com/RHFBAH/donation-reconciler/internal/textenc"
)

func newReconcileCommand() *cobra.Command {
	var donationsPath string
	var bankPath string
	var outPath string
	var encodingName string
	var configPath string
	var feePercent float64

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Match donation records against bank settlement records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(cmd, donationsPath, bankPath, outPath, encodingName, configPath, feePercent)
		},
	}

	cmd.Flags().StringVar(&donationsPath, "donations", "", "donation-platform export file (csv/xlsx/xls, required)")
	_ = cmd.MarkFlagRequired("donations")
	cmd.Flags().StringVar(&bankPath, "bank", "", "bank settlement export file (csv/xlsx/xls, required)")
	_ = cmd.MarkFlagRequired("bank")
	cmd.Flags().StringVar(&outPath, "out", "", "output CSV path (default stdout)")
	cmd.Flags().StringVar(&encodingName, "encoding", textenc.Auto, "input encoding, or auto to detect")
	cmd.Flags().StringVar(&configPath, "config", "", "donrec.yaml path")
	cmd.Flags().Float64Var(&feePercent, "fee-percent", 0, "platform fee percent (overrides config)")

	return cmd
}

func runReconcile(cmd *cobra.Command, donationsPath, bankPath, outPath, encodingName, configPath string, feePercent float64) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if encodingName == textenc.Auto && cfg.Encoding.Name != "" {
		encodingName = cfg.Encoding.Name
	}

	// An explicit --fee-percent 0 disables the fee; only an unset flag
	// falls through to the config, and only a missing config section to
	// the default.
	fee := feePercent
	if !cmd.Flags().Changed("fee-percent") {
		fee = cfg.Fees.Percent
		if fee == 0 {
			fee = reconcile.DefaultFeePercent
		}
	}

	donations, donDefaulted, err := importer.ParseDonationFile(donationsPath, encodingName)
	if err != nil {
		return fmt.Errorf("parsing donations: %w", err)
	}
	if len(donations) == 0 {
		return errors.New("donations file empty or invalid format")
	}

	bank, bankDefaulted, err := importer.ParseBankFile(bankPath, encodingName)
	if err != nil {
		return fmt.Errorf("parsing bank file: %w", err)
	}
	if len(bank) == 0 {
		return errors.New("bank file empty or invalid format")
	}

	errOut := cmd.ErrOrStderr()
	if n := donDefaulted + bankDefaulted; n > 0 {
		fmt.Fprintf(errOut, "warning: %d row(s) had unparseable dates defaulted to today\n", n)
	}

	feeDec := decimal.NewFromFloat(fee)
	txs := reconcile.Reconcile(donations, bank, reconcile.Options{
		FeePercent: &feeDec,
	})

	var out io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", outPath, err)
		}
		defer f.Close()
		out = f
	}
	if err := report.WriteTransactions(out, txs); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	matchedN, pendingN, extraN := 0, 0, 0
	for _, tx := range txs {
		switch tx.Reconciliation.Status {
		case model.StatusMatched:
			matchedN++
		case model.StatusPending:
			pendingN++
		case model.StatusExtraBankEntry:
			extraN++
		}
	}
	fmt.Fprintf(errOut, "%d matched, %d pending, %d extra bank entries\n", matchedN, pendingN, extraN)

	if n := nearMisses(txs, cfg.Matching.DateToleranceDays); n > 0 {
		fmt.Fprintf(errOut, "note: %d pending donation(s) have an extra bank entry within %d day(s); review for possible matches\n",
			n, cfg.Matching.DateToleranceDays)
	}
	return nil
}

// nearMisses counts pending donations with at least one extra bank entry
// dated within the tolerance window. Date proximity is a review signal
// only and never affects matching.
func nearMisses(txs []model.ReconciledTransaction, days int) int {
	n := 0
	for _, tx := range txs {
		if tx.Reconciliation.Status != model.StatusPending || tx.Donation == nil {
			continue
		}
		for _, other := range txs {
			if other.Reconciliation.Status != model.StatusExtraBankEntry || other.Bank == nil {
				continue
			}
			if reconcile.CloseDatesWithin(tx.Donation.Date, other.Bank.Date, days) {
				n++
				break
			}
		}
	}
	return n
}
