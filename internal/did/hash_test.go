package did

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-identity/internal/domain"
)

func TestComputeDIDHash(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "did:web",
			input:    "did:web:example.com",
			expected: "0x505b0e657e7acabd2c14e517173a347faed486bb69081ef673c6e52c03f57f3e",
		},
		{
			name:     "host casing collapses",
			input:    "did:web:Example.com",
			expected: "0x505b0e657e7acabd2c14e517173a347faed486bb69081ef673c6e52c03f57f3e",
		},
		{
			name:     "bare domain collapses",
			input:    "example.com",
			expected: "0x505b0e657e7acabd2c14e517173a347faed486bb69081ef673c6e52c03f57f3e",
		},
		{
			name:     "uppercase path",
			input:    "did:web:example.com/Path",
			expected: "0xd5a632692a4af865a22ddb84bbd9b01485a9b0070b232928a4a09bc82cc9108a",
		},
		{
			name:     "lowercase path",
			input:    "did:web:example.com/path",
			expected: "0xef16fa18da1594b6b53f366821217510c936c07694b6ed7625df79c3e07b0ba0",
		},
		{
			name:     "did:pkh address casing collapses",
			input:    "did:pkh:eip155:1:0xABCDEF1234567890123456789012345678901234",
			expected: "0xcce4f8f5f07bc1bc7b1a9cddf1a2090b6f88e5f35753971e77d5fae12b7ca925",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeDIDHash(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestComputeDIDHash_PathCaseMatters(t *testing.T) {
	upper, err := ComputeDIDHash("did:web:example.com/Path")
	require.NoError(t, err)
	lower, err := ComputeDIDHash("did:web:example.com/path")
	require.NoError(t, err)
	assert.NotEqual(t, upper, lower)
}

func TestComputeDIDHash_InvalidDID(t *testing.T) {
	_, err := ComputeDIDHash("did:pkh:eip155:0xabc")
	assert.ErrorIs(t, err, domain.ErrInvalidDID)
}

func TestComputeDIDAddress(t *testing.T) {
	tests := []struct {
		name        string
		hash        string
		expected    string
		expectedErr bool
	}{
		{
			name:     "trailing 20 bytes",
			hash:     "0x505b0e657e7acabd2c14e517173a347faed486bb69081ef673c6e52c03f57f3e",
			expected: "0x173a347faed486bb69081ef673c6e52c03f57f3e",
		},
		{
			name:     "casing is kept",
			hash:     "0x" + strings.Repeat("0", 24) + strings.Repeat("AB", 20),
			expected: "0x" + strings.Repeat("AB", 20),
		},
		{
			name:        "missing prefix",
			hash:        "505b0e657e7acabd2c14e517173a347faed486bb69081ef673c6e52c03f57f3e",
			expectedErr: true,
		},
		{
			name:        "too short",
			hash:        "0x173a347faed486bb69081ef673c6e52c03f57f3e",
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeDIDAddress(tt.hash)
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, "0x"+tt.hash[len(tt.hash)-40:], result)
		})
	}
}

func TestToAddress(t *testing.T) {
	first, err := ToAddress("did:web:example.com")
	require.NoError(t, err)
	second, err := ToAddress("did:web:example.com")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "0x173a347faed486bb69081ef673c6e52c03f57f3e", first)
	assert.Len(t, first, 42)
}

func TestValidateDIDAddress(t *testing.T) {
	tests := []struct {
		name     string
		did      string
		address  string
		expected bool
	}{
		{
			name:     "matching address",
			did:      "did:web:example.com",
			address:  "0x173a347faed486bb69081ef673c6e52c03f57f3e",
			expected: true,
		},
		{
			name:     "matching address in other casing",
			did:      "did:web:EXAMPLE.com",
			address:  "0x173A347FAED486BB69081EF673C6E52C03F57F3E",
			expected: true,
		},
		{
			name:     "different DID",
			did:      "did:web:example.org",
			address:  "0x173a347faed486bb69081ef673c6e52c03f57f3e",
			expected: false,
		},
		{
			name:     "invalid DID never panics",
			did:      "did:pkh:broken",
			address:  "0x173a347faed486bb69081ef673c6e52c03f57f3e",
			expected: false,
		},
		{
			name:     "empty inputs",
			did:      "",
			address:  "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateDIDAddress(tt.did, tt.address))
		})
	}
}
