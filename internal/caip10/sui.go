package caip10

import (
	"regexp"
	"strings"

	"github.com/feral-file/ff-identity/internal/domain"
)

// SuiNetworks are the accepted sui references
var SuiNetworks = []string{"mainnet", "testnet", "devnet"}

var suiAddressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]+$`)

// ValidateSui validates a sui network name and a 0x-prefixed hex address of at most
// 32 bytes. The address is lowercased and left-padded to 64 hex characters.
func ValidateSui(reference, address string) Validation {
	if !containsFold(SuiNetworks, reference) {
		return invalid(ErrorKindInvalidReference, "Invalid Sui network: %s. Supported: %s", reference, strings.Join(SuiNetworks, ", "))
	}

	if !suiAddressPattern.MatchString(address) {
		return invalid(ErrorKindInvalidAddress, "Sui address must be 0x followed by hex characters")
	}

	digits := strings.ToLower(address[2:])
	maxDigits := domain.SUI_ADDRESS_LENGTH * 2
	if len(digits) > maxDigits {
		return invalid(ErrorKindInvalidAddress, "Sui address must be at most %d bytes (%d hex characters)", domain.SUI_ADDRESS_LENGTH, maxDigits)
	}

	return validAddress("0x" + strings.Repeat("0", maxDigits-len(digits)) + digits)
}
