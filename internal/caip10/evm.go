package caip10

import (
	"regexp"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
)

var evmAddressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// ValidateEVM validates an eip155 reference (decimal chain ID) and a 0x-prefixed
// 20-byte hex address, returning the EIP-55 checksummed address.
// Any input casing is accepted.
func ValidateEVM(reference, address string) Validation {
	if _, err := strconv.ParseUint(reference, 10, 64); err != nil {
		return invalid(ErrorKindInvalidReference, "Invalid EVM chain ID: %s. Must be a non-negative integer", reference)
	}

	if !evmAddressPattern.MatchString(address) {
		return invalid(ErrorKindInvalidAddress, "Invalid EVM address format. Expected 0x followed by 40 hex characters")
	}

	if !common.IsHexAddress(address) {
		return invalid(ErrorKindChecksum, "Invalid EVM address")
	}

	return validAddress(common.HexToAddress(address).Hex())
}

// ChainID returns the numeric chain ID of an eip155 reference
func ChainID(reference string) (uint64, bool) {
	id, err := strconv.ParseUint(reference, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
