package domain

import (
	"fmt"
	"strings"
)

// DID represents a Decentralized Identifier (W3C standard)
type DID string

// DIDMethod is the method token of a DID, e.g. "web" or "pkh"
type DIDMethod string

const (
	DIDMethodWeb      DIDMethod = "web"
	DIDMethodPKH      DIDMethod = "pkh"
	DIDMethodHandle   DIDMethod = "handle"
	DIDMethodKey      DIDMethod = "key"
	DIDMethodArtifact DIDMethod = "artifact"
	DIDMethodEthr     DIDMethod = "ethr"
)

// NewDID creates a new did:pkh from an address on a chain
// Reference: https://github.com/w3c-ccg/did-pkh
func NewDID(address string, chain Chain) DID {
	chain = Chain(strings.ToLower(string(chain)))
	return DID(fmt.Sprintf("%s%s:%s", DID_PKH_PREFIX, chain, FoldAddressCase(chain.Namespace(), address)))
}

// FoldAddressCase returns the address in the casing used for identity comparison.
// Hex namespaces compare case-insensitively and fold to lowercase; solana base58
// is case sensitive and is returned as is. Unknown namespaces fold to lowercase,
// which matches the did:pkh convention.
func FoldAddressCase(ns Namespace, address string) string {
	if Namespace(strings.ToLower(string(ns))) == NamespaceSolana {
		return address
	}
	return strings.ToLower(address)
}

// String returns the string representation of the DID
func (d DID) String() string {
	return string(d)
}
