package encoding

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase58(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedHex string
		expectedErr error
	}{
		{
			name:        "solana system program",
			input:       "11111111111111111111111111111111",
			expectedHex: strings.Repeat("00", 32),
		},
		{
			name:        "wrapped SOL mint",
			input:       "So11111111111111111111111111111111111111112",
			expectedHex: "069b8857feab8184fb687f634618c035dac439dc1aeb3b5598a0f00000000001",
		},
		{
			name:        "token program",
			input:       "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
			expectedHex: "06ddf6e1d765a193d9cbe146ceeb79ac1cb485ed5f5b37913a8cf5857eff00a9",
		},
		{
			name:        "short ascii payload",
			input:       "3yZe7d",
			expectedHex: "74657374",
		},
		{
			name:        "leading ones become zero bytes",
			input:       "1112",
			expectedHex: "00000001",
		},
		{
			name:        "empty input",
			input:       "",
			expectedHex: "",
		},
		{
			name:        "character outside alphabet",
			input:       "0OIl",
			expectedErr: ErrInvalidBase58Character,
		},
		{
			name:        "too long",
			input:       strings.Repeat("2", MAX_BASE58_INPUT_LENGTH+1),
			expectedErr: ErrBase58TooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := DecodeBase58(tt.input)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedHex, hex.EncodeToString(result))
		})
	}
}

func TestEncodeBase58(t *testing.T) {
	assert.Equal(t, "StV1DL6CwTryKyV", EncodeBase58([]byte("hello world")))
	assert.Equal(t, "112", EncodeBase58([]byte{0, 0, 1}))
	assert.Equal(t, "", EncodeBase58(nil))

	decoded, err := DecodeBase58(EncodeBase58(make([]byte, 32)))
	require.NoError(t, err)
	assert.Len(t, decoded, 32)
}

func TestIsBase58(t *testing.T) {
	assert.True(t, IsBase58("So11111111111111111111111111111111111111112"))
	assert.False(t, IsBase58("InvalidChars!!!"))
	assert.False(t, IsBase58("0x1234"))
	assert.False(t, IsBase58(""))
}
