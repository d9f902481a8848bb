package constants

const (
	DEFAULT_CHAINS_LIMIT = 20
	MAX_CHAINS_LIMIT     = 100
	MAX_MESSAGE_LENGTH   = 4096
	MAX_SIGNATURE_LENGTH = 256
)
