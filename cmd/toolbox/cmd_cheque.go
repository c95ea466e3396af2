package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/o0fung/toolbox/internal/cheque"
)

// chequeCmd renders an amount as HK cheque wording
var chequeCmd = &cobra.Command{
	Use:   "cheque <amount>",
	Short: "Render an amount as Hong Kong cheque wording",
	Long: `Renders a dollar amount as cheque wording, in Traditional Chinese
financial-uppercase numerals and in English words.

The amount must be non-negative with at most two decimal digits;
thousands separators are accepted.

Examples:
  toolbox cheque 1001
  toolbox cheque 1,234.50
  toolbox cheque 0.05`,
	Args: cobra.ExactArgs(1),
	RunE: runCheque,
}

func runCheque(cmd *cobra.Command, args []string) error {
	amount, err := cheque.ParseAmount(args[0])
	if err != nil {
		return fmt.Errorf("%q: %w", args[0], err)
	}

	zh, en := cheque.Lines(amount)
	fmt.Fprintln(cmd.OutOrStdout(), zh)
	fmt.Fprintln(cmd.OutOrStdout(), en)
	return nil
}
