package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-identity/internal/binding"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(append([]string{"-env", t.TempDir()}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedCode   int
		expectedStdout string
		stderrContains string
	}{
		{
			name:           "normalize bare domain",
			args:           []string{"normalize", "Example.COM"},
			expectedStdout: "did:web:example.com\n",
		},
		{
			name:           "normalize several DIDs",
			args:           []string{"normalize", "did:handle:Twitter:Alice", "did:key:z6MkTest"},
			expectedStdout: "did:handle:twitter:Alice\ndid:key:z6MkTest\n",
		},
		{
			name:           "normalize reports failures",
			args:           []string{"normalize", "did:pkh:eip155:1", "did:web:example.com"},
			expectedCode:   1,
			expectedStdout: "did:web:example.com\n",
			stderrContains: "did:pkh:eip155:1",
		},
		{
			name:           "hash",
			args:           []string{"hash", "did:web:example.com"},
			expectedStdout: "0x505b0e657e7acabd2c14e517173a347faed486bb69081ef673c6e52c03f57f3e\n",
		},
		{
			name:           "address",
			args:           []string{"address", "did:web:example.com"},
			expectedStdout: "0x173a347faed486bb69081ef673c6e52c03f57f3e\n",
		},
		{
			name:           "address check",
			args:           []string{"address", "did:web:example.com", "0x173A347FAED486BB69081EF673C6E52C03F57F3E"},
			expectedStdout: "valid\n",
		},
		{
			name:           "address check mismatch",
			args:           []string{"address", "did:web:example.org", "0x173a347faed486bb69081ef673c6e52c03f57f3e"},
			expectedCode:   1,
			expectedStdout: "invalid\n",
		},
		{
			name:           "account",
			args:           []string{"account", "eip155:1:0xabcdef1234567890123456789012345678901234"},
			expectedStdout: "eip155:1:0xaBcDef1234567890123456789012345678901234\n",
		},
		{
			name:           "invalid account",
			args:           []string{"account", "cosmos:cosmoshub-4:cosmos1abc"},
			expectedCode:   1,
			stderrContains: "(unsupported_namespace)",
		},
		{
			name:           "search chains",
			args:           []string{"chains", "arbitrum"},
			expectedStdout: "eip155:42161\tArbitrum One\n",
		},
		{
			name:           "unknown command",
			args:           []string{"frobnicate"},
			expectedCode:   2,
			stderrContains: `unknown command "frobnicate"`,
		},
		{
			name:           "no command",
			args:           []string{},
			expectedCode:   2,
			stderrContains: "Usage: didctl",
		},
		{
			name:           "hash without argument",
			args:           []string{"hash"},
			expectedCode:   2,
			stderrContains: "exactly one DID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.args...)
			assert.Equal(t, tt.expectedCode, code)
			if tt.expectedStdout != "" {
				assert.Equal(t, tt.expectedStdout, stdout)
			}
			if tt.stderrContains != "" {
				assert.Contains(t, stderr, tt.stderrContains)
			}
		})
	}
}

func TestRun_AccountJSON(t *testing.T) {
	code, stdout, _ := runCLI(t, "-json", "account", "sui:MAINNET:0x2")
	require.Equal(t, 0, code)

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, true, result["valid"])
	assert.Equal(t, "sui:mainnet:0x0000000000000000000000000000000000000000000000000000000000000002", result["normalized"])
}

func TestRun_Message(t *testing.T) {
	code, stdout, _ := runCLI(t, "message", "did:web:Example.com", "eip155:1:0xabcdef1234567890123456789012345678901234")
	require.Equal(t, 0, code)

	signed, err := binding.ParseMessage(strings.TrimSuffix(stdout, "\n"))
	require.NoError(t, err)
	assert.Equal(t, "did:web:example.com", signed.DID)
	assert.Equal(t, "eip155:1:0xaBcDef1234567890123456789012345678901234", signed.Account)
	assert.WithinDuration(t, time.Now(), signed.IssuedAt, time.Minute)

	code, _, stderr := runCLI(t, "message", "did:web:example.com", "eip155:1:0x1234")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid address")

	code, _, _ = runCLI(t, "message", "did:web:example.com")
	assert.Equal(t, 2, code)
}

func TestRun_ChainsLimit(t *testing.T) {
	code, stdout, _ := runCLI(t, "-limit", "3", "chains")
	require.Equal(t, 0, code)
	assert.Len(t, strings.Split(strings.TrimSpace(stdout), "\n"), 3)
}

func TestRun_ChainsFromFile(t *testing.T) {
	dir := t.TempDir()
	chainsPath := filepath.Join(dir, "chains.json")
	require.NoError(t, os.WriteFile(chainsPath, []byte(`{"version":1,"chains":[{"chain":"eip155:7777777","name":"Zora"}]}`), 0600))

	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("registry:\n  chains_path: "+chainsPath+"\n"), 0600))

	code, stdout, _ := runCLI(t, "-config", configPath, "chains", "zora")
	require.Equal(t, 0, code)
	assert.Equal(t, "eip155:7777777\tZora\n", stdout)
}
