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

var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "Inspect inventory",
}

// stock list
var stockSearch string

var stockListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stock items",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		listing, err := c.ListStock(context.Background(), stockSearch)
		if err != nil {
			return err
		}

		if len(listing.Items) == 0 {
			fmt.Println("No stock items found.")
			return nil
		}

		fmt.Printf("%-10s %-30s %10s %12s %12s %-12s\n", "CODE", "NAME", "QTY", "UNIT PRICE", "VALUE", "STATUS")
		fmt.Printf("%-10s %-30s %10s %12s %12s %-12s\n", "----", "----", "---", "----------", "-----", "------")
		for _, item := range listing.Items {
			name := item.ItemName
			if len(name) > 28 {
				name = name[:26] + ".."
			}
			fmt.Printf("%-10s %-30s %10.0f %12.2f %12.2f %-12s\n",
				item.ItemCode, name, item.Quantity, item.UnitPrice, item.Value, item.Status)
		}
		fmt.Printf("\nTotal quantity: %.0f   Total value: %.2f\n", listing.TotalQuantity, listing.TotalValue)
		return nil
	},
}

// grn create
var (
	grnNo         string
	grnDate       string
	grnPONo       string
	grnSupplier   string
	grnReceivedBy string
	grnItems      []string // format: "itemCode:receivedQty:unitPrice[:itemName]"
)

var grnCmd = &cobra.Command{
	Use:   "grn",
	Short: "Manage goods-received notes",
}

var grnCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Record a goods-received note",
	Long: `Record a goods-received note and update stock on hand.
Each --item is formatted as "itemCode:receivedQty:unitPrice[:itemName]"
(e.g. --item ITM-001:10:25.50). The item name is only needed for codes
not already in stock.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		grn := &books.GRN{
			GRNNo:      grnNo,
			Date:       grnDate,
			PONo:       grnPONo,
			Supplier:   grnSupplier,
			ReceivedBy: grnReceivedBy,
		}
		for _, spec := range grnItems {
			parts := strings.SplitN(spec, ":", 4)
			if len(parts) < 3 {
				return fmt.Errorf("invalid item format %q, expected itemCode:receivedQty:unitPrice[:itemName]", spec)
			}
			qty, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return fmt.Errorf("invalid quantity %q in item %q: %w", parts[1], spec, err)
			}
			price, err := strconv.ParseFloat(parts[2], 64)
			if err != nil {
				return fmt.Errorf("invalid unit price %q in item %q: %w", parts[2], spec, err)
			}
			line := books.GRNLine{
				ItemCode:    parts[0],
				OrderedQty:  qty,
				ReceivedQty: qty,
				UnitPrice:   price,
				Amount:      qty * price,
			}
			if len(parts) == 4 {
				line.ItemName = parts[3]
			}
			grn.Lines = append(grn.Lines, line)
			grn.Total += line.Amount
		}

		created, err := c.CreateGRN(context.Background(), grn)
		if err != nil {
			return err
		}

		fmt.Printf("GRN recorded: %s (%s) total %.2f\n", created.GRNNo, created.Date, created.Total)
		for _, line := range created.Lines {
			fmt.Printf("  %-10s received %8.0f @ %10.2f = %12.2f\n",
				line.ItemCode, line.ReceivedQty, line.UnitPrice, line.Amount)
		}
		return nil
	},
}

var grnListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goods-received notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		grns, err := c.ListGRNs(context.Background())
		if err != nil {
			return err
		}

		if len(grns) == 0 {
			fmt.Println("No goods-received notes found.")
			return nil
		}

		fmt.Printf("%-12s %-12s %-12s %-20s %6s %12s\n", "GRN", "DATE", "PO", "SUPPLIER", "LINES", "TOTAL")
		fmt.Printf("%-12s %-12s %-12s %-20s %6s %12s\n", "---", "----", "--", "--------", "-----", "-----")
		for _, g := range grns {
			fmt.Printf("%-12s %-12s %-12s %-20s %6d %12.2f\n",
				g.GRNNo, g.Date, g.PONo, g.Supplier, len(g.Lines), g.Total)
		}
		return nil
	},
}

// sale create
var (
	saleInvoiceNo string
	saleDate      string
	saleCustomer  string
	saleTax       float64
	saleItems     []string // format: "itemCode:quantity:unitPrice[:description]"
)

var saleCmd = &cobra.Command{
	Use:   "sale",
	Short: "Manage sale invoices",
}

var saleCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Record a sale invoice",
	Long: `Record a sale invoice and deduct stock on hand.
Each --item is formatted as "itemCode:quantity:unitPrice[:description]"
(e.g. --item ITM-003:2:120).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		sale := &books.SaleInvoice{
			InvoiceNo: saleInvoiceNo,
			Date:      saleDate,
			Customer:  saleCustomer,
			Tax:       saleTax,
		}
		for _, spec := range saleItems {
			parts := strings.SplitN(spec, ":", 4)
			if len(parts) < 3 {
				return fmt.Errorf("invalid item format %q, expected itemCode:quantity:unitPrice[:description]", spec)
			}
			qty, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return fmt.Errorf("invalid quantity %q in item %q: %w", parts[1], spec, err)
			}
			price, err := strconv.ParseFloat(parts[2], 64)
			if err != nil {
				return fmt.Errorf("invalid unit price %q in item %q: %w", parts[2], spec, err)
			}
			line := books.SaleLine{
				ItemCode:  parts[0],
				Quantity:  qty,
				UnitPrice: price,
				Amount:    qty * price,
			}
			if len(parts) == 4 {
				line.Description = parts[3]
			}
			sale.Lines = append(sale.Lines, line)
			sale.Subtotal += line.Amount
		}
		sale.Total = sale.Subtotal + sale.Tax

		created, err := c.CreateSale(context.Background(), sale)
		if err != nil {
			return err
		}

		fmt.Printf("Invoice recorded: %s (%s) for %s\n", created.InvoiceNo, created.Date, created.Customer)
		for _, line := range created.Lines {
			fmt.Printf("  %-10s %8.0f @ %10.2f = %12.2f\n",
				line.ItemCode, line.Quantity, line.UnitPrice, line.Amount)
		}
		fmt.Printf("Subtotal %.2f  Tax %.2f  Total %.2f\n", created.Subtotal, created.Tax, created.Total)
		return nil
	},
}

var saleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sale invoices",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		sales, err := c.ListSales(context.Background())
		if err != nil {
			return err
		}

		if len(sales) == 0 {
			fmt.Println("No sale invoices found.")
			return nil
		}

		fmt.Printf("%-12s %-12s %-20s %6s %12s %10s %12s\n", "INVOICE", "DATE", "CUSTOMER", "LINES", "SUBTOTAL", "TAX", "TOTAL")
		fmt.Printf("%-12s %-12s %-20s %6s %12s %10s %12s\n", "-------", "----", "--------", "-----", "--------", "---", "-----")
		for _, s := range sales {
			fmt.Printf("%-12s %-12s %-20s %6d %12.2f %10.2f %12.2f\n",
				s.InvoiceNo, s.Date, s.Customer, len(s.Lines), s.Subtotal, s.Tax, s.Total)
		}
		return nil
	},
}

func init() {
	stockListCmd.Flags().StringVar(&stockSearch, "search", "", "Filter by item code or name")
	stockCmd.AddCommand(stockListCmd)

	grnCreateCmd.Flags().StringVar(&grnNo, "no", "", "GRN number")
	grnCreateCmd.Flags().StringVar(&grnDate, "date", "", "Receipt date (yyyy-mm-dd)")
	grnCreateCmd.Flags().StringVar(&grnPONo, "po", "", "Purchase order number")
	grnCreateCmd.Flags().StringVar(&grnSupplier, "supplier", "", "Supplier name")
	grnCreateCmd.Flags().StringVar(&grnReceivedBy, "received-by", "", "Receiver name")
	grnCreateCmd.Flags().StringArrayVar(&grnItems, "item", nil, "Line: itemCode:receivedQty:unitPrice[:itemName]")
	grnCreateCmd.MarkFlagRequired("no")
	grnCreateCmd.MarkFlagRequired("date")
	grnCmd.AddCommand(grnCreateCmd)
	grnCmd.AddCommand(grnListCmd)

	saleCreateCmd.Flags().StringVar(&saleInvoiceNo, "no", "", "Invoice number")
	saleCreateCmd.Flags().StringVar(&saleDate, "date", "", "Invoice date (yyyy-mm-dd)")
	saleCreateCmd.Flags().StringVar(&saleCustomer, "customer", "", "Customer name")
	saleCreateCmd.Flags().Float64Var(&saleTax, "tax", 0, "Tax amount")
	saleCreateCmd.Flags().StringArrayVar(&saleItems, "item", nil, "Line: itemCode:quantity:unitPrice[:description]")
	saleCreateCmd.MarkFlagRequired("no")
	saleCreateCmd.MarkFlagRequired("date")
	saleCmd.AddCommand(saleCreateCmd)
	saleCmd.AddCommand(saleListCmd)

	rootCmd.AddCommand(stockCmd)
	rootCmd.AddCommand(grnCmd)
	rootCmd.AddCommand(saleCmd)
}
