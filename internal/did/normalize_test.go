package did

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-identity/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectedErr bool
	}{
		{
			name:     "bare domain becomes did:web",
			input:    "example.com",
			expected: "did:web:example.com",
		},
		{
			name:     "bare domain with path",
			input:    "Example.COM/Users/Alice",
			expected: "did:web:example.com/Users/Alice",
		},
		{
			name:     "did:web host is lowercased",
			input:    "did:web:Example.com",
			expected: "did:web:example.com",
		},
		{
			name:     "did:web path casing is preserved",
			input:    "did:web:EXAMPLE.com/Path/To",
			expected: "did:web:example.com/Path/To",
		},
		{
			name:     "surrounding whitespace is trimmed",
			input:    "  did:web:example.com \n",
			expected: "did:web:example.com",
		},
		{
			name:     "did:pkh eip155 address is lowercased",
			input:    "did:pkh:eip155:1:0xABCDEF1234567890123456789012345678901234",
			expected: "did:pkh:eip155:1:0xabcdef1234567890123456789012345678901234",
		},
		{
			name:     "did:pkh namespace and chain id are untouched",
			input:    "did:pkh:EIP155:0x1:0xABCD",
			expected: "did:pkh:EIP155:0x1:0xabcd",
		},
		{
			name:     "did:pkh solana address keeps casing",
			input:    "did:pkh:solana:mainnet:So11111111111111111111111111111111111111112",
			expected: "did:pkh:solana:mainnet:So11111111111111111111111111111111111111112",
		},
		{
			name:        "did:pkh with too few segments",
			input:       "did:pkh:eip155:0xabc",
			expectedErr: true,
		},
		{
			name:        "did:pkh with too many segments",
			input:       "did:pkh:eip155:1:0xabc:extra",
			expectedErr: true,
		},
		{
			name:     "did:handle platform is lowercased",
			input:    "did:handle:Twitter:JackDorsey",
			expected: "did:handle:twitter:JackDorsey",
		},
		{
			name:        "did:handle with wrong segment count",
			input:       "did:handle:twitter",
			expectedErr: true,
		},
		{
			name:     "did:key is unchanged",
			input:    "did:key:z6MkhaXgBZDvotDkL5257faiztiGiC2QtKLGpbnnEGta2doK",
			expected: "did:key:z6MkhaXgBZDvotDkL5257faiztiGiC2QtKLGpbnnEGta2doK",
		},
		{
			name:     "did:artifact is trimmed only",
			input:    " did:artifact:ABC ",
			expected: "did:artifact:ABC",
		},
		{
			name:     "did:ethr is unchanged",
			input:    "did:ethr:0xABC",
			expected: "did:ethr:0xABC",
		},
		{
			name:     "unknown method passes through",
			input:    "did:plc:Ewvi7nWzBFTwxC2SbKnDQEeS",
			expected: "did:plc:Ewvi7nWzBFTwxC2SbKnDQEeS",
		},
		{
			name:        "empty input",
			input:       "   ",
			expectedErr: true,
		},
		{
			name:        "did:web without domain",
			input:       "did:web:/path",
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Normalize(tt.input)
			if tt.expectedErr {
				assert.ErrorIs(t, err, domain.ErrInvalidDID)
				assert.Empty(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)

			normalized, err := Normalize(result)
			require.NoError(t, err)
			assert.Equal(t, result, normalized)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Example.com/Path",
		"did:web:EXAMPLE.org",
		"did:pkh:eip155:1:0xABCDEF1234567890123456789012345678901234",
		"did:handle:GitHub:Octocat",
		"did:key:z6Mk",
		"did:unknown:Whatever",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, err := Normalize(input)
			require.NoError(t, err)
			second, err := Normalize(first)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestNormalizeWeb_RejectsOtherMethods(t *testing.T) {
	_, err := normalizeWeb("did:pkh:eip155:1:0xabc")
	assert.ErrorIs(t, err, domain.ErrInvalidDID)
}

func TestMustNormalize(t *testing.T) {
	assert.Equal(t, "did:web:example.com", MustNormalize("Example.com"))
	assert.Equal(t, "did:pkh:bad", MustNormalize(" did:pkh:bad "))
}

func TestFromCAIP10(t *testing.T) {
	tests := []struct {
		name        string
		account     string
		expected    string
		expectedErr error
	}{
		{
			name:     "eip155 account",
			account:  "eip155:1:0x5AAEB6053F3E94C9B9A09F33669435E7EF1BEAED",
			expected: "did:pkh:eip155:1:0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		},
		{
			name:     "solana account",
			account:  "solana:Mainnet:So11111111111111111111111111111111111111112",
			expected: "did:pkh:solana:mainnet:So11111111111111111111111111111111111111112",
		},
		{
			name:     "sui account",
			account:  "sui:mainnet:0xABC",
			expected: "did:pkh:sui:mainnet:0x0000000000000000000000000000000000000000000000000000000000000abc",
		},
		{
			name:        "unsupported namespace",
			account:     "cosmos:cosmoshub-4:cosmos1abc",
			expectedErr: domain.ErrUnsupportedNamespace,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := FromCAIP10(tt.account)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)

			normalized, err := Normalize(result)
			require.NoError(t, err)
			assert.Equal(t, result, normalized)
		})
	}
}
