package cmd

import (
	"github.com/spf13/cobra"
)

var (
	flagServer string
	flagDB     string
)

var rootCmd = &cobra.Command{
	Use:   "microbooks",
	Short: "Small-business accounting and inventory",
	Long:  "Double-entry bookkeeping and stock tracking for a small business: chart of accounts, journal vouchers, trial balance, purchase orders, goods-received notes, sale invoices, and stock ledgers, backed by a single SQLite file.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "http://localhost:8877", "Server address")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "microbooks.db", "SQLite database path")
}

func Execute() error {
	return rootCmd.Execute()
}
