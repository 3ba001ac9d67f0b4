// Package validate provides syntactic checks for protocol-native addresses.
// These gates run before any network or computation work; a failed check is a
// client error, never a system fault.
package validate

import (
	"strings"

	"github.com/mr-tron/base58"
)

// Solana-style address length bounds, inclusive.
const (
	minMintLen = 32
	maxMintLen = 44
)

// MintAddress reports whether s is a plausible protocol-native token address:
// 32-44 characters after trimming surrounding whitespace, composed entirely
// of Base58 (Bitcoin alphabet) characters. The alphabet excludes the visually
// ambiguous 0, O, I and l. Pure predicate, no network access.
func MintAddress(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < minMintLen || len(s) > maxMintLen {
		return false
	}
	// base58.Decode fails on any character outside the alphabet.
	if _, err := base58.Decode(s); err != nil {
		return false
	}
	return true
}
