package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "show the network status and latest block",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		ctx := context.Background()
		status, err := client.GetNetworkStatus(ctx)
		if err != nil {
			return err
		}
		fmt.Println("Network:     ", status.NetworkID)
		fmt.Println("Block height:", status.BlockHeight)
		fmt.Println("Peers:       ", status.PeerCount)
		fmt.Println("Syncing:     ", status.Syncing)

		block, err := client.GetLatestBlock(ctx)
		if err != nil {
			return err
		}
		fmt.Println("Latest block:", block.Hash)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
