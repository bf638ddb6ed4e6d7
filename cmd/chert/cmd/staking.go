package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var validatorsCmd = &cobra.Command{
	Use:   "validators",
	Short: "list active validators",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		validators, err := client.Staking.GetValidators(context.Background())
		if err != nil {
			return err
		}
		for _, v := range validators {
			fmt.Printf("%s  power=%s  commission=%s  %s\n", v.Address, v.VotingPower, v.Commission, v.Status)
		}
		return nil
	},
}

var delegationsCmd = &cobra.Command{
	Use:   "delegations <address>",
	Short: "list an address's delegations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		delegations, err := client.Staking.GetDelegations(context.Background(), args[0])
		if err != nil {
			return err
		}
		for _, d := range delegations {
			fmt.Printf("%s  amount=%s  rewards=%s\n", d.ValidatorAddress, d.Amount, d.Rewards)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validatorsCmd)
	rootCmd.AddCommand(delegationsCmd)
}
