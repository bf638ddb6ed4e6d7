package cmd

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	chert "github.com/chertnetwork/go-chert"
	"github.com/chertnetwork/go-chert/privacy"
	"github.com/chertnetwork/go-chert/scanstore"
)

var (
	scanDBPath   string
	scanToHeight uint64
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "scan the chain for outputs addressed to your stealth identity",
	Long: `Fetches outputs from the node and tests each against your view key.
Owned outputs are recorded in an encrypted local database, so repeated
scans resume from the last synced height. The node never learns which
outputs are yours.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		viewSecret, err := promptSecret("View secret key: ")
		if err != nil {
			return err
		}
		spendSecret, err := promptSecret("Spend secret key: ")
		if err != nil {
			return err
		}
		keys, err := loadStealthKeys(viewSecret, spendSecret)
		if err != nil {
			return err
		}
		defer keys.Wipe()

		passphrase, err := promptSecret("Database passphrase: ")
		if err != nil {
			return err
		}
		store, err := scanstore.Open(scanDBPath, []byte(passphrase))
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := context.Background()
		from, err := store.SyncedHeight()
		if err != nil {
			return err
		}
		to := scanToHeight
		if to == 0 {
			status, err := client.GetNetworkStatus(ctx)
			if err != nil {
				return err
			}
			to = status.BlockHeight
		}
		if to < from {
			fmt.Println("Already synced to height", from)
			return nil
		}

		outputs, err := client.Privacy.GetOutputs(ctx, from, to)
		if err != nil {
			return err
		}

		scanner := privacy.NewScanner(keys)
		owned := scanner.ScanOutputs(outputs)
		for _, out := range owned {
			if err := store.PutOutput(out); err != nil {
				return err
			}
			fmt.Printf("Found output %s: %s CHERT at height %d\n",
				hex.EncodeToString(out.OneTimePubKey[:8]), chert.FormatAmount(out.Amount), out.BlockHeight)
			if len(out.Memo) > 0 {
				fmt.Printf("  memo: %s\n", out.Memo)
			}
		}
		if err := store.SetSyncedHeight(to); err != nil {
			return err
		}

		fmt.Printf("Scanned %d outputs in [%d, %d], %d owned\n", len(outputs), from, to, len(owned))
		return nil
	},
}

// loadStealthKeys rebuilds a stealth identity from its two hex secrets.
func loadStealthKeys(viewSecret, spendSecret string) (*privacy.StealthKeys, error) {
	parse := func(name, s string) ([32]byte, error) {
		var key [32]byte
		raw, err := hex.DecodeString(s)
		if err != nil || len(raw) != 32 {
			return key, fmt.Errorf("%s: expected 64 hex characters", name)
		}
		copy(key[:], raw)
		return key, nil
	}

	view, err := parse("view secret", viewSecret)
	if err != nil {
		return nil, err
	}
	spend, err := parse("spend secret", spendSecret)
	if err != nil {
		return nil, err
	}

	keys := &privacy.StealthKeys{
		View:  privacy.KeyPair{Secret: view, Public: privacy.PublicFromSecret(view)},
		Spend: privacy.KeyPair{Secret: spend, Public: privacy.PublicFromSecret(spend)},
	}
	return keys, nil
}

func init() {
	scanCmd.Flags().StringVar(&scanDBPath, "db", "chert-scan.db", "path to the encrypted scan database")
	scanCmd.Flags().Uint64Var(&scanToHeight, "to", 0, "scan up to this height (0 means chain tip)")
	rootCmd.AddCommand(scanCmd)
}
