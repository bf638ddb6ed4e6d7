package params

// Coin denomination constants shared by the SDK and the CLI.
const (
	// Decimals is the number of decimal places in a CHERT amount string.
	Decimals = 8

	// AtomicPerCoin is the number of atomic units in 1 CHERT.
	AtomicPerCoin = uint64(100_000_000)

	// Ticker is the display symbol for amounts.
	Ticker = "CHERT"
)
