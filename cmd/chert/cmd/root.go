package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	chert "github.com/chertnetwork/go-chert"
	"github.com/chertnetwork/go-chert/protocol/params"
)

var (
	endpoint string
	network  string
	timeout  time.Duration
	apiKey   string
	verbose  bool
)

// rootCmd represents the base command called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chert",
	Short: "command line client for the Chert network",
	Long:  `use "chert help [<command>]" for detailed usage`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&endpoint, "endpoint", "a", "", "node RPC endpoint (defaults to the network's public endpoint)")
	rootCmd.PersistentFlags().StringVarP(&network, "network", "n", string(params.Mainnet), "network: mainnet, testnet or devnet")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "bearer token for authenticated endpoints")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// newClient builds a client from the persistent flags.
func newClient() (*chert.Client, error) {
	cfg := chert.DefaultConfig(params.Network(network))
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	cfg.Timeout = timeout
	cfg.APIKey = apiKey
	if verbose {
		logger := logrus.New()
		logger.SetLevel(logrus.DebugLevel)
		cfg.Logger = logger
	}
	return chert.NewClient(cfg)
}

// promptSecret reads a secret with hidden input when attached to a
// terminal, falling back to a plain line read otherwise.
func promptSecret(prompt string) (string, error) {
	fmt.Print(prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		secret, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(secret)), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
