package chert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chertnetwork/go-chert/protocol/params"
)

// ParseAmount converts a decimal CHERT string to atomic units.
// Negative amounts, malformed decimals, and values that overflow uint64
// are rejected. Fractional digits beyond the supported precision are
// rejected rather than silently truncated.
func ParseAmount(s string) (uint64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), params.Ticker))
	if s == "" {
		return 0, validationError("amount", "amount cannot be empty")
	}
	if strings.HasPrefix(s, "-") {
		return 0, validationError("amount", "amount cannot be negative")
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, validationError("amount", "invalid amount format")
	}

	whole, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return 0, validationError("amount", "invalid amount format")
	}
	if whole > (^uint64(0))/params.AtomicPerCoin {
		return 0, validationError("amount", "amount too large")
	}
	result := whole * params.AtomicPerCoin

	if len(parts) == 2 {
		fracStr := parts[1]
		if fracStr == "" {
			return 0, validationError("amount", "invalid amount format")
		}
		if len(fracStr) > params.Decimals {
			return 0, validationError("amount", fmt.Sprintf("at most %d decimal places supported", params.Decimals))
		}
		fracStr = fracStr + strings.Repeat("0", params.Decimals-len(fracStr))
		frac, err := strconv.ParseUint(fracStr, 10, 64)
		if err != nil {
			return 0, validationError("amount", "invalid amount format")
		}
		if result > (^uint64(0))-frac {
			return 0, validationError("amount", "amount too large")
		}
		result += frac
	}

	return result, nil
}

// FormatAmount renders atomic units as a decimal CHERT string with
// trailing zeros trimmed.
func FormatAmount(atomicUnits uint64) string {
	whole := atomicUnits / params.AtomicPerCoin
	frac := atomicUnits % params.AtomicPerCoin
	if frac == 0 {
		return strconv.FormatUint(whole, 10)
	}
	fracStr := fmt.Sprintf("%0*d", params.Decimals, frac)
	fracStr = strings.TrimRight(fracStr, "0")
	return fmt.Sprintf("%d.%s", whole, fracStr)
}
