// Package address normalizes and validates Injective account addresses.
// It is the unresolvable-input boundary of the profile pipeline: anything
// that fails here never reaches derivation.
package address

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// HRP is the bech32 human-readable prefix for Injective accounts.
const HRP = "inj"

// ErrInvalidAddress is returned when an identifier cannot be normalized
// to a valid Injective address.
var ErrInvalidAddress = errors.New("invalid injective address")

// Normalize trims and lower-cases the identifier, then verifies it is a
// well-formed bech32 string carrying the "inj" prefix. The canonical
// (lower-case) form is returned.
func Normalize(input string) (string, error) {
	addr := strings.ToLower(strings.TrimSpace(input))
	if addr == "" {
		return "", ErrInvalidAddress
	}

	hrp, _, err := bech32.Decode(addr)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidAddress, err)
	}
	if hrp != HRP {
		return "", fmt.Errorf("%w: prefix %q", ErrInvalidAddress, hrp)
	}

	return addr, nil
}

// Valid reports whether input normalizes to a valid Injective address.
func Valid(input string) bool {
	_, err := Normalize(input)
	return err == nil
}
