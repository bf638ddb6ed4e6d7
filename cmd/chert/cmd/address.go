package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chertnetwork/go-chert/privacy"
	"github.com/chertnetwork/go-chert/protocol/params"
)

var addressCmd = &cobra.Command{
	Use:   "address <view-public-key> <spend-public-key>",
	Short: "encode a stealth address from published public keys",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		viewPub, err := privacy.DecodePublicKey(args[0])
		if err != nil {
			return fmt.Errorf("view key: %w", err)
		}
		spendPub, err := privacy.DecodePublicKey(args[1])
		if err != nil {
			return fmt.Errorf("spend key: %w", err)
		}
		fmt.Println(privacy.EncodeAddress(spendPub, viewPub, params.Network(network).NetworkID()))
		return nil
	},
}

var decodeAddressCmd = &cobra.Command{
	Use:   "decode-address <address>",
	Short: "decode a stealth address back into its public keys",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spendPub, viewPub, err := privacy.ParseAddress(args[0], params.Network(network).NetworkID())
		if err != nil {
			return err
		}
		fmt.Println("View public key:  ", privacy.EncodePublicKey(viewPub))
		fmt.Println("Spend public key: ", privacy.EncodePublicKey(spendPub))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addressCmd)
	rootCmd.AddCommand(decodeAddressCmd)
}
