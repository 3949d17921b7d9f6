package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/microbooks/microbooks/internal/books"
	"github.com/microbooks/microbooks/internal/client"
	"github.com/spf13/cobra"
)

var voucherCmd = &cobra.Command{
	Use:   "voucher",
	Short: "Manage journal vouchers",
}

// voucher create
var (
	voucherNo      string
	voucherDate    string
	voucherType    string
	voucherRef     string
	voucherDebits  []string // format: "accountCode:amount[:description]"
	voucherCredits []string
)

func parseVoucherLine(spec string, isDebit bool) (books.VoucherLine, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) < 2 {
		return books.VoucherLine{}, fmt.Errorf("invalid line format %q, expected accountCode:amount[:description]", spec)
	}
	amount, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return books.VoucherLine{}, fmt.Errorf("invalid amount %q in line %q: %w", parts[1], spec, err)
	}
	line := books.VoucherLine{AccountCode: parts[0]}
	if len(parts) == 3 {
		line.Description = parts[2]
	}
	if isDebit {
		line.Debit = amount
	} else {
		line.Credit = amount
	}
	return line, nil
}

var voucherCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Record a journal voucher",
	Long: `Record a multi-line journal voucher.
Each --debit/--credit is formatted as "accountCode:amount[:description]"
(e.g. --debit 1001:500:cash --credit 4005:500). Debits must equal credits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		v := &books.Voucher{
			VoucherNo: voucherNo,
			Date:      voucherDate,
			Type:      books.VoucherType(voucherType),
			Reference: voucherRef,
		}

		for _, spec := range voucherDebits {
			line, err := parseVoucherLine(spec, true)
			if err != nil {
				return err
			}
			v.Lines = append(v.Lines, line)
		}
		for _, spec := range voucherCredits {
			line, err := parseVoucherLine(spec, false)
			if err != nil {
				return err
			}
			v.Lines = append(v.Lines, line)
		}

		created, err := c.CreateVoucher(context.Background(), v)
		if err != nil {
			return err
		}

		fmt.Printf("Voucher recorded: %s (%s, %s)\n", created.VoucherNo, created.Type, created.Date)
		for _, line := range created.Lines {
			if line.Debit > 0 {
				fmt.Printf("  DR %-6s %12.2f  %s\n", line.AccountCode, line.Debit, line.Description)
			} else {
				fmt.Printf("  CR %-6s %12.2f  %s\n", line.AccountCode, line.Credit, line.Description)
			}
		}
		return nil
	},
}

// voucher list
var voucherListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded vouchers",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		vouchers, err := c.ListVouchers(context.Background())
		if err != nil {
			return err
		}

		if len(vouchers) == 0 {
			fmt.Println("No vouchers found.")
			return nil
		}

		fmt.Printf("%-12s %-12s %-10s %-6s %12s %12s\n", "VOUCHER", "DATE", "TYPE", "LINES", "DEBIT", "CREDIT")
		fmt.Printf("%-12s %-12s %-10s %-6s %12s %12s\n", "-------", "----", "----", "-----", "-----", "------")
		for _, v := range vouchers {
			debit, credit := books.LineTotals(v.Lines)
			fmt.Printf("%-12s %-12s %-10s %-6d %12.2f %12.2f\n",
				v.VoucherNo, v.Date, v.Type, len(v.Lines), debit, credit)
		}
		return nil
	},
}

func init() {
	voucherCreateCmd.Flags().StringVar(&voucherNo, "no", "", "Voucher number")
	voucherCreateCmd.Flags().StringVar(&voucherDate, "date", "", "Voucher date (yyyy-mm-dd)")
	voucherCreateCmd.Flags().StringVar(&voucherType, "type", "Journal", "Voucher type (Journal, Payment, Receipt, Contra)")
	voucherCreateCmd.Flags().StringVar(&voucherRef, "ref", "", "Reference text")
	voucherCreateCmd.Flags().StringArrayVar(&voucherDebits, "debit", nil, "Debit line: accountCode:amount[:description]")
	voucherCreateCmd.Flags().StringArrayVar(&voucherCredits, "credit", nil, "Credit line: accountCode:amount[:description]")
	voucherCreateCmd.MarkFlagRequired("no")
	voucherCreateCmd.MarkFlagRequired("date")

	voucherCmd.AddCommand(voucherCreateCmd)
	voucherCmd.AddCommand(voucherListCmd)

	rootCmd.AddCommand(voucherCmd)
}
