package caip10

import (
	"strings"

	"github.com/feral-file/ff-identity/internal/domain"
	"github.com/feral-file/ff-identity/internal/encoding"
)

// SolanaNetworks are the accepted solana references
var SolanaNetworks = []string{"mainnet", "devnet", "testnet"}

// maxSolanaAddressLength is the longest base58 string a 32-byte value can encode to
const maxSolanaAddressLength = 44

// ValidateSolana validates a solana network name and a base58 address decoding to 32 bytes.
// The address is returned unchanged since base58 is case sensitive.
func ValidateSolana(reference, address string) Validation {
	if !containsFold(SolanaNetworks, reference) {
		return invalid(ErrorKindInvalidReference, "Invalid Solana network: %s. Supported: %s", reference, strings.Join(SolanaNetworks, ", "))
	}

	if !encoding.IsBase58(address) {
		return invalid(ErrorKindInvalidAddress, "Solana address must be base58-encoded")
	}

	if len(address) > maxSolanaAddressLength {
		return invalid(ErrorKindInvalidAddress, "Solana address must decode to %d bytes", domain.SOLANA_ADDRESS_LENGTH)
	}

	decoded, err := encoding.DecodeBase58(address)
	if err != nil {
		return invalid(ErrorKindInvalidAddress, "Failed to decode Solana address: %s", err.Error())
	}

	if len(decoded) != domain.SOLANA_ADDRESS_LENGTH {
		return invalid(ErrorKindInvalidAddress, "Solana address must decode to %d bytes, got %d", domain.SOLANA_ADDRESS_LENGTH, len(decoded))
	}

	return validAddress(address)
}

func containsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
