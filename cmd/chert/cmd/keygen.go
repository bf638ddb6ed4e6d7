package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chertnetwork/go-chert/privacy"
	"github.com/chertnetwork/go-chert/protocol/params"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "generate a stealth identity (view and spend keypairs)",
	Long: `Generates a fresh dual-key stealth identity and prints the public
address along with the secret keys. Store the secrets safely; they are
printed once and never persisted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := privacy.GenerateStealthKeys()
		if err != nil {
			return err
		}
		defer keys.Wipe()

		fmt.Println("Address:          ", keys.Address(params.Network(network).NetworkID()))
		fmt.Println("View public key:  ", privacy.EncodePublicKey(keys.View.Public))
		fmt.Println("Spend public key: ", privacy.EncodePublicKey(keys.Spend.Public))
		fmt.Println("View secret key:  ", hex.EncodeToString(keys.View.Secret[:]))
		fmt.Println("Spend secret key: ", hex.EncodeToString(keys.Spend.Secret[:]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keygenCmd)
}
