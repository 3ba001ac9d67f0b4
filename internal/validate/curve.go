package validate

import (
	"filippo.io/edwards25519"

	"github.com/mr-tron/base58"
)

// IsOnCurve reports whether address decodes to 32 bytes that form a valid
// ed25519 point. Wallet keypairs are always on the curve; program-derived
// addresses (fee vaults, protocol accounts) are off it, so this distinguishes
// user wallets from protocol vaults among configured fee recipients.
func IsOnCurve(address string) bool {
	raw, err := base58.Decode(address)
	if err != nil || len(raw) != 32 {
		return false
	}
	_, err = new(edwards25519.Point).SetBytes(raw)
	return err == nil
}
