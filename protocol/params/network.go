package params

// Network selects which Chert network the SDK talks to.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Devnet  Network = "devnet"
)

// Valid reports whether n is a known network.
func (n Network) Valid() bool {
	switch n {
	case Mainnet, Testnet, Devnet:
		return true
	}
	return false
}

// NetworkID returns the public network identifier used as a domain
// separator in protocol constructions (address checksums, memo KDFs).
func (n Network) NetworkID() string {
	switch n {
	case Testnet:
		return "chert_testnet"
	case Devnet:
		return "chert_devnet"
	default:
		return "chert_mainnet"
	}
}

// DefaultEndpoint returns the default API endpoint for the network.
func (n Network) DefaultEndpoint() string {
	switch n {
	case Testnet:
		return "https://testnet-api.chert.com"
	case Devnet:
		return "http://localhost:26657"
	default:
		return "https://api.chert.com"
	}
}
