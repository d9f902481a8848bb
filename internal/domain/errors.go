package domain

import "errors"

var (
	// ErrInvalidDID is returned when a DID does not match the expected method grammar
	ErrInvalidDID = errors.New("invalid DID")

	// ErrInvalidCAIP10 is returned when an account identifier is not namespace:reference:address
	ErrInvalidCAIP10 = errors.New("invalid CAIP-10 account")

	// ErrUnsupportedNamespace is returned for chain namespaces outside eip155, solana and sui
	ErrUnsupportedNamespace = errors.New("unsupported namespace")

	// ErrInvalidAddress is returned when an address fails namespace encoding rules
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidSignature is returned when an ownership proof does not verify
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrChainNotFound is returned when a chain is not present in the registry
	ErrChainNotFound = errors.New("chain not found")
)
