package domain

const (
	// DID prefixes
	DID_PREFIX     = "did:"
	DID_WEB_PREFIX = "did:web:"
	DID_PKH_PREFIX = "did:pkh:"

	// Hash and address sizes
	DID_HASH_LENGTH    = 32
	DID_ADDRESS_LENGTH = 20

	// Blockchain constants
	SOLANA_ADDRESS_LENGTH = 32
	SUI_ADDRESS_LENGTH    = 32
)
