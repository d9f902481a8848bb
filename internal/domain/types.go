package domain

import (
	"fmt"
	"strings"
)

// Namespace represents a CAIP-2 chain namespace (the chain family)
type Namespace string

const (
	NamespaceEIP155 Namespace = "eip155"
	NamespaceSolana Namespace = "solana"
	NamespaceSui    Namespace = "sui"
)

// SupportedNamespaces lists the namespaces accepted for CAIP-10 accounts, in display order
var SupportedNamespaces = []Namespace{NamespaceEIP155, NamespaceSolana, NamespaceSui}

// IsSupportedNamespace checks if a namespace is one of the supported chain families
func IsSupportedNamespace(ns Namespace) bool {
	switch ns {
	case NamespaceEIP155, NamespaceSolana, NamespaceSui:
		return true
	default:
		return false
	}
}

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainEthereumMainnet Chain = "eip155:1"
	ChainEthereumSepolia Chain = "eip155:11155111"
	ChainSolanaMainnet   Chain = "solana:mainnet"
	ChainSolanaDevnet    Chain = "solana:devnet"
	ChainSolanaTestnet   Chain = "solana:testnet"
	ChainSuiMainnet      Chain = "sui:mainnet"
	ChainSuiTestnet      Chain = "sui:testnet"
	ChainSuiDevnet       Chain = "sui:devnet"
)

// NewChain creates a new Chain from a namespace and a reference
func NewChain(ns Namespace, reference string) Chain {
	return Chain(fmt.Sprintf("%s:%s", ns, reference))
}

// Parse splits the chain into namespace and reference.
// ok is false when the chain has no colon or an empty segment.
func (c Chain) Parse() (ns Namespace, reference string, ok bool) {
	n, r, found := strings.Cut(string(c), ":")
	if !found || n == "" || r == "" {
		return "", "", false
	}
	return Namespace(n), r, true
}

// Namespace returns the namespace part of the chain, or empty if malformed
func (c Chain) Namespace() Namespace {
	ns, _, _ := c.Parse()
	return ns
}

// String returns the string representation of the chain
func (c Chain) String() string {
	return string(c)
}
