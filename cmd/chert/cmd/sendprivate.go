package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	chert "github.com/chertnetwork/go-chert"
	"github.com/chertnetwork/go-chert/privacy"
)

var (
	privateFee   string
	privateMemo  string
	privateNonce uint64
	privateLevel string
)

var sendPrivateCmd = &cobra.Command{
	Use:   "send-private <stealth-address> <amount>",
	Short: "send a private transfer to a stealth address",
	Long: `Builds a private transfer to a stealth address. A fresh one-time
destination is derived client-side; the sender's secret key is prompted
with hidden input.`,
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

		txID, err := client.Privacy.SendPrivateTransaction(context.Background(), chert.PrivateTransferRequest{
			RecipientAddress: args[0],
			Amount:           args[1],
			Fee:              privateFee,
			Memo:             privateMemo,
			Nonce:            privateNonce,
			Level:            privacy.PrivacyLevel(privateLevel),
		}, secretKey)
		if err != nil {
			return err
		}
		fmt.Println("Transaction ID:", txID)
		return nil
	},
}

func init() {
	sendPrivateCmd.Flags().StringVar(&privateFee, "fee", "", "fee in CHERT")
	sendPrivateCmd.Flags().StringVar(&privateMemo, "memo", "", "memo, encrypted to the recipient")
	sendPrivateCmd.Flags().Uint64Var(&privateNonce, "nonce", 0, "account nonce")
	sendPrivateCmd.Flags().StringVar(&privateLevel, "level", string(privacy.PrivacyStealth), "privacy level: stealth or encrypted")
	rootCmd.AddCommand(sendPrivateCmd)
}
