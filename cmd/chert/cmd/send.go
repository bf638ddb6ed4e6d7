package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	chert "github.com/chertnetwork/go-chert"
)

var (
	sendFee   string
	sendMemo  string
	sendNonce uint64
	sendWait  bool
)

var sendCmd = &cobra.Command{
	Use:   "send <recipient> <amount>",
	Short: "send a public transfer",
	Long: `Sends a public transfer. The sender's secret key is prompted with
hidden input, never taken from the command line.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		secretKey, err := promptSecret("Sender secret key: ")
		if err != nil {
			return err
		}
		account, err := client.Wallet.ImportAccount(secretKey)
		if err != nil {
			return err
		}

		ctx := context.Background()
		hash, err := client.Wallet.SendTransaction(ctx, chert.TransactionRequest{
			To:     args[0],
			Amount: args[1],
			Fee:    sendFee,
			Memo:   sendMemo,
			Nonce:  sendNonce,
		}, account)
		if err != nil {
			return err
		}
		fmt.Println("Transaction hash:", hash)

		if sendWait {
			fmt.Println("Waiting for confirmation...")
			tx, err := client.Wallet.WaitForTransaction(ctx, hash, 2*time.Second)
			if err != nil {
				return err
			}
			fmt.Println("Status:", tx.Status)
		}
		return nil
	},
}

func init() {
	sendCmd.Flags().StringVar(&sendFee, "fee", "", "fee in CHERT (node estimates when empty)")
	sendCmd.Flags().StringVar(&sendMemo, "memo", "", "public memo")
	sendCmd.Flags().Uint64Var(&sendNonce, "nonce", 0, "account nonce")
	sendCmd.Flags().BoolVar(&sendWait, "wait", false, "block until the transaction confirms")
	rootCmd.AddCommand(sendCmd)
}
