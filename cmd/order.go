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

// purchase orders

var poCmd = &cobra.Command{
	Use:   "po",
	Short: "Manage purchase orders",
}

var (
	poNo           string
	poDate         string
	poSupplier     string
	poDeliveryDate string
	poTerms        string
	poItems        []string // format: "itemCode:quantity:unitPrice[:description]"
)

var poCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Raise a purchase order",
	Long: `Raise a purchase order with a supplier. Orders have no stock effect
until goods are received via a GRN. Each --item is formatted as
"itemCode:quantity:unitPrice[:description]".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		po := &books.PurchaseOrder{
			PONo:         poNo,
			Date:         poDate,
			Supplier:     poSupplier,
			DeliveryDate: poDeliveryDate,
			Terms:        poTerms,
		}
		for _, spec := range poItems {
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
			line := books.POLine{
				ItemCode:  parts[0],
				Quantity:  qty,
				UnitPrice: price,
				Amount:    qty * price,
			}
			if len(parts) == 4 {
				line.Description = parts[3]
			}
			po.Lines = append(po.Lines, line)
			po.Total += line.Amount
		}

		created, err := c.CreatePurchaseOrder(context.Background(), po)
		if err != nil {
			return err
		}

		fmt.Printf("Purchase order raised: %s (%s) with %s, total %.2f [%s]\n",
			created.PONo, created.Date, created.Supplier, created.Total, created.Status)
		return nil
	},
}

var poListCmd = &cobra.Command{
	Use:   "list",
	Short: "List purchase orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		orders, err := c.ListPurchaseOrders(context.Background())
		if err != nil {
			return err
		}

		if len(orders) == 0 {
			fmt.Println("No purchase orders found.")
			return nil
		}

		fmt.Printf("%-12s %-12s %-20s %-12s %6s %12s %-10s\n", "PO", "DATE", "SUPPLIER", "DELIVERY", "LINES", "TOTAL", "STATUS")
		fmt.Printf("%-12s %-12s %-20s %-12s %6s %12s %-10s\n", "--", "----", "--------", "--------", "-----", "-----", "------")
		for _, po := range orders {
			fmt.Printf("%-12s %-12s %-20s %-12s %6d %12.2f %-10s\n",
				po.PONo, po.Date, po.Supplier, po.DeliveryDate, len(po.Lines), po.Total, po.Status)
		}
		return nil
	},
}

// sale orders

var soCmd = &cobra.Command{
	Use:   "so",
	Short: "Manage sale orders",
}

var (
	soNo       string
	soDate     string
	soCustomer string
	soItems    []string // format: "itemCode:quantity:unitPrice[:description]"
)

var soCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Record a sale order",
	Long: `Record a customer sale order. Orders have no stock effect until
invoiced. Each --item is formatted as "itemCode:quantity:unitPrice[:description]".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		so := &books.SaleOrder{
			OrderNo:  soNo,
			Date:     soDate,
			Customer: soCustomer,
		}
		for _, spec := range soItems {
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
			line := books.SaleOrderLine{
				ItemCode:  parts[0],
				Quantity:  qty,
				UnitPrice: price,
			}
			if len(parts) == 4 {
				line.Description = parts[3]
			}
			so.Lines = append(so.Lines, line)
			so.Total += qty * price
		}

		created, err := c.CreateSaleOrder(context.Background(), so)
		if err != nil {
			return err
		}

		fmt.Printf("Sale order recorded: %s (%s) for %s, total %.2f [%s]\n",
			created.OrderNo, created.Date, created.Customer, created.Total, created.Status)
		return nil
	},
}

var soListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sale orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		orders, err := c.ListSaleOrders(context.Background())
		if err != nil {
			return err
		}

		if len(orders) == 0 {
			fmt.Println("No sale orders found.")
			return nil
		}

		fmt.Printf("%-12s %-12s %-20s %6s %12s %-10s\n", "ORDER", "DATE", "CUSTOMER", "LINES", "TOTAL", "STATUS")
		fmt.Printf("%-12s %-12s %-20s %6s %12s %-10s\n", "-----", "----", "--------", "-----", "-----", "------")
		for _, so := range orders {
			fmt.Printf("%-12s %-12s %-20s %6d %12.2f %-10s\n",
				so.OrderNo, so.Date, so.Customer, len(so.Lines), so.Total, so.Status)
		}
		return nil
	},
}

func init() {
	poCreateCmd.Flags().StringVar(&poNo, "no", "", "Purchase order number")
	poCreateCmd.Flags().StringVar(&poDate, "date", "", "Order date (yyyy-mm-dd)")
	poCreateCmd.Flags().StringVar(&poSupplier, "supplier", "", "Supplier name")
	poCreateCmd.Flags().StringVar(&poDeliveryDate, "delivery", "", "Expected delivery date (yyyy-mm-dd)")
	poCreateCmd.Flags().StringVar(&poTerms, "terms", "", "Payment terms")
	poCreateCmd.Flags().StringArrayVar(&poItems, "item", nil, "Line: itemCode:quantity:unitPrice[:description]")
	poCreateCmd.MarkFlagRequired("no")
	poCreateCmd.MarkFlagRequired("date")
	poCmd.AddCommand(poCreateCmd)
	poCmd.AddCommand(poListCmd)

	soCreateCmd.Flags().StringVar(&soNo, "no", "", "Sale order number")
	soCreateCmd.Flags().StringVar(&soDate, "date", "", "Order date (yyyy-mm-dd)")
	soCreateCmd.Flags().StringVar(&soCustomer, "customer", "", "Customer name")
	soCreateCmd.Flags().StringArrayVar(&soItems, "item", nil, "Line: itemCode:quantity:unitPrice[:description]")
	soCreateCmd.MarkFlagRequired("no")
	soCreateCmd.MarkFlagRequired("date")
	soCmd.AddCommand(soCreateCmd)
	soCmd.AddCommand(soListCmd)

	rootCmd.AddCommand(poCmd)
	rootCmd.AddCommand(soCmd)
}
