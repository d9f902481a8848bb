package did

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/feral-file/ff-identity/internal/domain"
)

var didHashPattern = regexp.MustCompile(fmt.Sprintf(`^0x[0-9a-fA-F]{%d}$`, domain.DID_HASH_LENGTH*2))

// Hash returns the keccak-256 digest of the normalized DID
func Hash(d string) (common.Hash, error) {
	normalized, err := Normalize(d)
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash([]byte(normalized)), nil
}

// ComputeDIDHash returns the 0x-prefixed hex keccak-256 digest of the normalized DID
func ComputeDIDHash(d string) (string, error) {
	h, err := Hash(d)
	if err != nil {
		return "", err
	}
	return h.Hex(), nil
}

// ComputeDIDAddress takes the trailing 20 bytes of a DID hash.
// The result is a lookup key only; it is not an account that can hold funds or sign.
func ComputeDIDAddress(didHash string) (string, error) {
	if !didHashPattern.MatchString(didHash) {
		return "", fmt.Errorf("%w: DID hash must be 0x followed by 64 hex characters", domain.ErrInvalidDID)
	}
	return "0x" + didHash[len(didHash)-domain.DID_ADDRESS_LENGTH*2:], nil
}

// ToAddress computes the DID address of a DID
func ToAddress(d string) (string, error) {
	h, err := ComputeDIDHash(d)
	if err != nil {
		return "", err
	}
	return ComputeDIDAddress(h)
}

// ValidateDIDAddress checks that address is the DID address of d, ignoring case.
// Any failure yields false.
func ValidateDIDAddress(d string, address string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	expected, err := ToAddress(d)
	if err != nil {
		return false
	}
	return strings.EqualFold(expected, address)
}
