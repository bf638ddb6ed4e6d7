package chert

import (
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/chertnetwork/go-chert/protocol/params"
)

// Config parameterizes the client. It affects the transport only; the
// cryptographic core takes no configuration.
type Config struct {
	// Endpoint is the base URL of the Chert API. Defaults to the
	// network's public endpoint when empty.
	Endpoint string

	// Network selects mainnet, testnet, or devnet.
	Network params.Network

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// APIKey, when set, is sent as a bearer token.
	APIKey string

	// Headers are extra headers attached to every request.
	Headers map[string]string

	// Logger receives transport-level diagnostics. Secrets, signing
	// payloads, and memo plaintext are never logged. Defaults to a
	// logger that discards everything.
	Logger *logrus.Logger
}

// DefaultConfig returns a config pointed at the given network.
func DefaultConfig(network params.Network) Config {
	return Config{
		Endpoint: network.DefaultEndpoint(),
		Network:  network,
		Timeout:  30 * time.Second,
	}
}

func (c *Config) validate() error {
	if c.Network == "" {
		c.Network = params.Mainnet
	}
	if !c.Network.Valid() {
		return validationError("network", "unknown network "+string(c.Network))
	}
	if c.Endpoint == "" {
		c.Endpoint = c.Network.DefaultEndpoint()
	}
	if _, err := url.ParseRequestURI(c.Endpoint); err != nil {
		return validationError("endpoint", "invalid endpoint URL")
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.Logger == nil {
		logger := logrus.New()
		logger.SetLevel(logrus.PanicLevel)
		c.Logger = logger
	}
	return nil
}
