package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var proposalsLimit int

var proposalsCmd = &cobra.Command{
	Use:   "proposals",
	Short: "list governance proposals",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		proposals, err := client.Governance.GetProposals(context.Background(), proposalsLimit)
		if err != nil {
			return err
		}
		for _, p := range proposals {
			fmt.Printf("#%s  %-10s  %s\n", p.ID, p.Status, p.Title)
		}
		return nil
	},
}

var proposalCmd = &cobra.Command{
	Use:   "proposal <id>",
	Short: "show one proposal with its vote tally",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		p, err := client.Governance.GetProposal(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Println("Title:      ", p.Title)
		fmt.Println("Proposer:   ", p.Proposer)
		fmt.Println("Status:     ", p.Status)
		fmt.Println("Voting ends:", p.VotingEndTime)
		fmt.Println(p.Description)
		fmt.Printf("Tally: yes=%s no=%s abstain=%s veto=%s\n",
			p.Tally.Yes, p.Tally.No, p.Tally.Abstain, p.Tally.NoWithVeto)
		return nil
	},
}

func init() {
	proposalsCmd.Flags().IntVar(&proposalsLimit, "limit", 20, "maximum number of proposals to list")
	rootCmd.AddCommand(proposalsCmd)
	rootCmd.AddCommand(proposalCmd)
}
