package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <address>",
	Short: "get the balance of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		balance, err := client.Wallet.GetBalance(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Println("Available:", balance.Available, "CHERT")
		fmt.Println("Pending:  ", balance.Pending, "CHERT")
		fmt.Println("Total:    ", balance.Total, "CHERT")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}
