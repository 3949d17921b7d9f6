package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/microbooks/microbooks/internal/books"
	"github.com/microbooks/microbooks/internal/client"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run accounting and inventory reports",
}

var (
	reportFrom string
	reportTo   string
	reportAsOf string
)

// report ledger
var ledgerReportCmd = &cobra.Command{
	Use:   "ledger [accountCode]",
	Short: "Show an account ledger",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		lg, err := c.Ledger(context.Background(), args[0], reportFrom, reportTo)
		if err != nil {
			return err
		}

		printLedger(lg)
		return nil
	},
}

func printLedger(lg *books.Ledger) {
	w := 86
	fmt.Println()
	fmt.Println(center("ACCOUNT LEDGER", w))
	if lg.AccountCode != "" {
		fmt.Println(center(fmt.Sprintf("%s - %s", lg.AccountCode, lg.AccountName), w))
	}
	fmt.Println(center(strings.Repeat("=", 20), w))
	fmt.Println()

	if len(lg.Rows) == 0 {
		fmt.Println("  No ledger entries.")
		return
	}

	fmt.Printf("  %-12s %-12s %-28s %12s %12s %12s\n", "DATE", "VOUCHER", "DESCRIPTION", "DEBIT", "CREDIT", "BALANCE")
	fmt.Printf("  %-12s %-12s %-28s %12s %12s %12s\n", "----", "-------", "-----------", "-----", "------", "-------")
	for _, row := range lg.Rows {
		desc := row.Description
		if len(desc) > 26 {
			desc = desc[:24] + ".."
		}
		fmt.Printf("  %-12s %-12s %-28s %12s %12s %12.2f\n",
			row.Date, row.VoucherNo, desc, blankZero(row.Debit), blankZero(row.Credit), row.Balance)
	}

	fmt.Printf("  %s\n", strings.Repeat("─", w-4))
	fmt.Printf("  %-54s %12.2f %12.2f\n", "TOTALS", lg.TotalDebit, lg.TotalCredit)
	fmt.Printf("  %-54s %25s %12.2f\n", "CLOSING BALANCE", "", lg.ClosingBalance)
}

// report trial
var trialReportCmd = &cobra.Command{
	Use:   "trial",
	Short: "Show the trial balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		tb, err := c.TrialBalance(context.Background(), reportAsOf)
		if err != nil {
			return err
		}

		printTrialBalance(tb)
		return nil
	},
}

func printTrialBalance(tb *books.TrialBalance) {
	w := 76
	fmt.Println()
	fmt.Println(center("TRIAL BALANCE", w))
	if tb.AsOf != "" {
		fmt.Println(center("as of "+tb.AsOf, w))
	}
	fmt.Println(center(strings.Repeat("=", 20), w))
	fmt.Println()

	for _, group := range tb.Groups {
		fmt.Printf("  %s\n", strings.ToUpper(string(group.Type)))
		fmt.Printf("  %s\n", strings.Repeat("─", w-4))
		for _, row := range group.Rows {
			name := row.Name
			if len(name) > 38 {
				name = name[:36] + ".."
			}
			fmt.Printf("  %-8s %-40s %10s %10s\n", row.Code, name, blankZero(row.Debit), blankZero(row.Credit))
		}
		fmt.Println()
	}

	fmt.Printf("  %s\n", strings.Repeat("═", w-4))
	fmt.Printf("  %-49s %10.2f %10.2f\n", "TOTALS", tb.TotalDebit, tb.TotalCredit)

	if tb.Balanced {
		fmt.Println("\n  [BALANCED]")
	} else {
		fmt.Printf("\n  [UNBALANCED! difference %.2f]\n", tb.Difference)
	}
}

// report stockledger
var stockLedgerReportCmd = &cobra.Command{
	Use:   "stockledger [itemCode]",
	Short: "Show a stock item movement ledger",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		sl, err := c.StockLedger(context.Background(), args[0], reportFrom, reportTo)
		if err != nil {
			return err
		}

		printStockLedger(sl)
		return nil
	},
}

func printStockLedger(sl *books.StockLedger) {
	w := 78
	fmt.Println()
	fmt.Println(center("STOCK LEDGER", w))
	if sl.ItemCode != "" {
		fmt.Println(center(fmt.Sprintf("%s - %s", sl.ItemCode, sl.ItemName), w))
	}
	fmt.Println(center(strings.Repeat("=", 20), w))
	fmt.Println()

	if len(sl.Rows) == 0 {
		fmt.Println("  No stock movements.")
		return
	}

	fmt.Printf("  %-12s %-12s %-22s %8s %8s %10s\n", "DATE", "TYPE", "REFERENCE", "IN", "OUT", "BALANCE")
	fmt.Printf("  %-12s %-12s %-22s %8s %8s %10s\n", "----", "----", "---------", "--", "---", "-------")
	for _, row := range sl.Rows {
		fmt.Printf("  %-12s %-12s %-22s %8s %8s %10.0f\n",
			row.Date, row.Type, row.ReferenceNo, blankZeroQty(row.In), blankZeroQty(row.Out), row.Balance)
	}

	fmt.Printf("  %s\n", strings.Repeat("─", w-4))
	fmt.Printf("  %-48s %8.0f %8.0f %10.0f\n", "TOTALS / CLOSING", sl.TotalIn, sl.TotalOut, sl.ClosingBalance)
}

// report sales
var salesReportCmd = &cobra.Command{
	Use:   "sales",
	Short: "Show a sales summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		sr, err := c.SalesReport(context.Background(), reportFrom, reportTo)
		if err != nil {
			return err
		}

		printSalesReport(sr)
		return nil
	},
}

func printSalesReport(sr *books.SalesReport) {
	w := 60
	fmt.Println()
	fmt.Println(center("SALES REPORT", w))
	fmt.Println(center(strings.Repeat("=", 20), w))
	fmt.Println()

	fmt.Printf("  Invoices: %d   Subtotal: %.2f   Tax: %.2f   Total: %.2f\n\n",
		len(sr.Invoices), sr.TotalSubtotal, sr.TotalTax, sr.TotalSales)

	if len(sr.ByDate) > 0 {
		fmt.Println("  BY DATE")
		fmt.Printf("  %s\n", strings.Repeat("─", w-4))
		for _, t := range sr.ByDate {
			fmt.Printf("  %-30s %15.2f\n", t.Key, t.Total)
		}
		fmt.Println()
	}

	if len(sr.ByCustomer) > 0 {
		fmt.Println("  BY CUSTOMER")
		fmt.Printf("  %s\n", strings.Repeat("─", w-4))
		for _, t := range sr.ByCustomer {
			name := t.Key
			if len(name) > 28 {
				name = name[:26] + ".."
			}
			fmt.Printf("  %-30s %15.2f\n", name, t.Total)
		}
	}
}

func center(s string, w int) string {
	if len(s) >= w {
		return s
	}
	pad := (w - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func blankZero(amount float64) string {
	if amount == 0 {
		return ""
	}
	return fmt.Sprintf("%.2f", amount)
}

func blankZeroQty(qty float64) string {
	if qty == 0 {
		return ""
	}
	return fmt.Sprintf("%.0f", qty)
}

func init() {
	ledgerReportCmd.Flags().StringVar(&reportFrom, "from", "", "Start date (yyyy-mm-dd)")
	ledgerReportCmd.Flags().StringVar(&reportTo, "to", "", "End date (yyyy-mm-dd)")
	trialReportCmd.Flags().StringVar(&reportAsOf, "as-of", "", "Cutoff date (yyyy-mm-dd)")
	stockLedgerReportCmd.Flags().StringVar(&reportFrom, "from", "", "Start date (yyyy-mm-dd)")
	stockLedgerReportCmd.Flags().StringVar(&reportTo, "to", "", "End date (yyyy-mm-dd)")
	salesReportCmd.Flags().StringVar(&reportFrom, "from", "", "Start date (yyyy-mm-dd)")
	salesReportCmd.Flags().StringVar(&reportTo, "to", "", "End date (yyyy-mm-dd)")

	reportCmd.AddCommand(ledgerReportCmd)
	reportCmd.AddCommand(trialReportCmd)
	reportCmd.AddCommand(stockLedgerReportCmd)
	reportCmd.AddCommand(salesReportCmd)

	rootCmd.AddCommand(reportCmd)
}
