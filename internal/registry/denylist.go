package registry

import (
	"fmt"

	"github.com/feral-file/ff-identity/internal/adapter"
	"github.com/feral-file/ff-identity/internal/caip10"
	"github.com/feral-file/ff-identity/internal/domain"
)

// DenylistRegistry defines the interface for denied account lookups
//
//go:generate mockgen -source=denylist.go -destination=../mocks/denylist_registry.go -package=mocks -mock_names=DenylistRegistry=MockDenylistRegistry,DenylistRegistryLoader=MockDenylistRegistryLoader
type DenylistRegistry interface {
	// IsDenied checks if an account is denied, in any spelling that normalizes to the same account
	IsDenied(account string) bool
}

// DenylistData represents the structure of the denylist.json file
// Key format: "chain_id" -> list of addresses
type DenylistData map[string][]string

// denylistRegistry is the internal implementation of DenylistRegistry interface
type denylistRegistry struct {
	// normalized CAIP-10 account -> true
	accounts map[string]bool
}

// DenylistRegistryLoader defines the interface for loading denylists from files
type DenylistRegistryLoader interface {
	Load(filePath string) (DenylistRegistry, error)
}

type denylistRegistryLoader struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewDenylistRegistryLoader creates a new DenylistRegistryLoader with injected dependencies
func NewDenylistRegistryLoader(fs adapter.FileSystem, json adapter.JSON) DenylistRegistryLoader {
	return &denylistRegistryLoader{
		fs:   fs,
		json: json,
	}
}

// Load loads the denylist from a JSON file. Every entry must be a valid account.
func (l *denylistRegistryLoader) Load(filePath string) (DenylistRegistry, error) {
	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read denylist file: %w", err)
	}

	var denylistData DenylistData
	if err := l.json.Unmarshal(data, &denylistData); err != nil {
		return nil, fmt.Errorf("failed to parse denylist JSON: %w", err)
	}

	return NewDenylist(denylistData)
}

// NewDenylist builds a denylist from chain -> addresses data
func NewDenylist(data DenylistData) (DenylistRegistry, error) {
	dl := &denylistRegistry{
		accounts: make(map[string]bool),
	}

	for chainID, addresses := range data {
		ns, ref, ok := domain.Chain(chainID).Parse()
		if !ok {
			return nil, fmt.Errorf("%w: invalid chain id %q in denylist", domain.ErrInvalidCAIP10, chainID)
		}

		for _, addr := range addresses {
			result := caip10.Normalize(caip10.Build(string(ns), ref, addr))
			if !result.Valid {
				return nil, fmt.Errorf("invalid denylist entry %s:%s: %w", chainID, addr, result.Err())
			}
			dl.accounts[result.Normalized] = true
		}
	}

	return dl, nil
}

// IsDenied checks if an account is denied
func (d *denylistRegistry) IsDenied(account string) bool {
	if d == nil {
		return false
	}
	result := caip10.Normalize(account)
	if !result.Valid {
		return false
	}
	return d.accounts[result.Normalized]
}
