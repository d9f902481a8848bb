package caip10

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-identity/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    *Account
		expectedErr bool
	}{
		{
			name:     "eip155 account",
			input:    "eip155:1:0xab16a96D359eC26a11e2C2b3d8f8B8942d5Bfcdb",
			expected: &Account{Namespace: "eip155", Reference: "1", Address: "0xab16a96D359eC26a11e2C2b3d8f8B8942d5Bfcdb"},
		},
		{
			name:     "case is preserved",
			input:    "SOLANA:Mainnet:So11111111111111111111111111111111111111112",
			expected: &Account{Namespace: "SOLANA", Reference: "Mainnet", Address: "So11111111111111111111111111111111111111112"},
		},
		{
			name:     "address keeps colons and slashes",
			input:    "foo:bar:baz:qux/quux",
			expected: &Account{Namespace: "foo", Reference: "bar", Address: "baz:qux/quux"},
		},
		{
			name:        "empty input",
			input:       "",
			expectedErr: true,
		},
		{
			name:        "only one colon",
			input:       "eip155:0xabc",
			expectedErr: true,
		},
		{
			name:        "empty reference",
			input:       "eip155::0xabc",
			expectedErr: true,
		},
		{
			name:        "empty address",
			input:       "eip155:1:",
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := Parse(tt.input)
			if tt.expectedErr {
				assert.ErrorIs(t, err, domain.ErrInvalidCAIP10)
				assert.Nil(t, account)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, account)
		})
	}
}

func TestParseBuildRoundTrip(t *testing.T) {
	parts := []Account{
		{Namespace: "eip155", Reference: "1", Address: "0xabc"},
		{Namespace: "solana", Reference: "devnet", Address: "So11111111111111111111111111111111111111112"},
		{Namespace: "sui", Reference: "mainnet", Address: "0x1"},
		{Namespace: "x", Reference: "y", Address: "a:b/c"},
	}

	for _, p := range parts {
		t.Run(p.String(), func(t *testing.T) {
			parsed, err := Parse(Build(p.Namespace, p.Reference, p.Address))
			require.NoError(t, err)
			assert.Equal(t, p, *parsed)
		})
	}
}

func TestAccount_Chain(t *testing.T) {
	account := Account{Namespace: "eip155", Reference: "11155111", Address: "0xabc"}
	assert.Equal(t, domain.ChainEthereumSepolia, account.Chain())
	assert.Equal(t, "eip155:11155111:0xabc", account.String())
}
