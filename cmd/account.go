package cmd

import (
	"context"
	"fmt"

	"github.com/microbooks/microbooks/internal/books"
	"github.com/microbooks/microbooks/internal/client"
	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage the chart of accounts",
}

// account create
var (
	acctCreateCode    string
	acctCreateName    string
	acctCreateType    string
	acctCreateOpening float64
)

var accountCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add an account to the chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		acct := &books.Account{
			Code:           acctCreateCode,
			Name:           acctCreateName,
			Type:           books.AccountType(acctCreateType),
			OpeningBalance: acctCreateOpening,
		}

		created, err := c.CreateAccount(context.Background(), acct)
		if err != nil {
			return err
		}

		fmt.Printf("Account created: %s %s [%s] opening %.2f\n",
			created.Code, created.Name, created.Type, created.OpeningBalance)
		return nil
	},
}

// account list
var acctListType string

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		accounts, err := c.ListAccounts(context.Background(), acctListType)
		if err != nil {
			return err
		}

		if len(accounts) == 0 {
			fmt.Println("No accounts found.")
			return nil
		}

		fmt.Printf("%-6s %-40s %-10s %12s\n", "CODE", "NAME", "TYPE", "OPENING")
		fmt.Printf("%-6s %-40s %-10s %12s\n", "----", "----", "----", "-------")
		for _, a := range accounts {
			name := a.Name
			if len(name) > 38 {
				name = name[:36] + ".."
			}
			fmt.Printf("%-6s %-40s %-10s %12.2f\n", a.Code, name, a.Type, a.OpeningBalance)
		}
		return nil
	},
}

// account get
var accountGetCmd = &cobra.Command{
	Use:   "get [code]",
	Short: "Get account details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		acct, err := c.GetAccount(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Code:    %s\n", acct.Code)
		fmt.Printf("Name:    %s\n", acct.Name)
		fmt.Printf("Type:    %s\n", acct.Type)
		fmt.Printf("Normal:  %s\n", books.NormalBalance(acct.Type))
		fmt.Printf("Opening: %.2f\n", acct.OpeningBalance)
		return nil
	},
}

// account delete
var accountDeleteCmd = &cobra.Command{
	Use:   "delete [code]",
	Short: "Remove an account from the chart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		if err := c.DeleteAccount(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Account %s deleted\n", args[0])
		return nil
	},
}

func init() {
	accountCreateCmd.Flags().StringVar(&acctCreateCode, "code", "", "Account code (e.g. 1001)")
	accountCreateCmd.Flags().StringVar(&acctCreateName, "name", "", "Account name")
	accountCreateCmd.Flags().StringVar(&acctCreateType, "type", "", "Account type (Asset, Liability, Equity, Revenue, Expense)")
	accountCreateCmd.Flags().Float64Var(&acctCreateOpening, "opening", 0, "Opening balance (negative = credit-normal)")
	accountCreateCmd.MarkFlagRequired("code")
	accountCreateCmd.MarkFlagRequired("name")
	accountCreateCmd.MarkFlagRequired("type")

	accountListCmd.Flags().StringVar(&acctListType, "type", "", "Filter by account type")

	accountCmd.AddCommand(accountCreateCmd)
	accountCmd.AddCommand(accountListCmd)
	accountCmd.AddCommand(accountGetCmd)
	accountCmd.AddCommand(accountDeleteCmd)

	rootCmd.AddCommand(accountCmd)
}
