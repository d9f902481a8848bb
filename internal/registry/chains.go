package registry

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/feral-file/ff-identity/internal/adapter"
	"github.com/feral-file/ff-identity/internal/caip10"
	"github.com/feral-file/ff-identity/internal/domain"
)

// ChainRegistry defines the interface for CAIP-2 chain lookups
//
//go:generate mockgen -source=chains.go -destination=../mocks/chain_registry.go -package=mocks -mock_names=ChainRegistry=MockChainRegistry,ChainRegistryLoader=MockChainRegistryLoader
type ChainRegistry interface {
	// Lookup returns the chain entry for a CAIP-2 chain id, in any casing
	Lookup(chain domain.Chain) (*ChainInfo, bool)

	// List returns all chains ordered by namespace then reference
	List() []ChainInfo

	// Search finds chains whose name or chain id contains the query.
	// A limit <= 0 returns every match.
	Search(query string, limit int) []ChainInfo
}

// ChainInfo represents a chain entry in the registry
type ChainInfo struct {
	Chain   domain.Chain `json:"chain"`
	Name    string       `json:"name"`
	Testnet bool         `json:"testnet"`
}

// Namespace returns the chain namespace
func (c ChainInfo) Namespace() domain.Namespace {
	return c.Chain.Namespace()
}

// Reference returns the chain reference
func (c ChainInfo) Reference() string {
	_, ref, _ := c.Chain.Parse()
	return ref
}

// ChainRegistryData represents the structure of the chain registry JSON file
type ChainRegistryData struct {
	Version int         `json:"version"`
	Chains  []ChainInfo `json:"chains"`
}

// DefaultChains returns the built-in chain list
func DefaultChains() []ChainInfo {
	return []ChainInfo{
		{Chain: domain.ChainEthereumMainnet, Name: "Ethereum"},
		{Chain: "eip155:10", Name: "Optimism"},
		{Chain: "eip155:137", Name: "Polygon"},
		{Chain: "eip155:8453", Name: "Base"},
		{Chain: "eip155:42161", Name: "Arbitrum One"},
		{Chain: "eip155:84532", Name: "Base Sepolia", Testnet: true},
		{Chain: domain.ChainEthereumSepolia, Name: "Ethereum Sepolia", Testnet: true},
		{Chain: domain.ChainSolanaMainnet, Name: "Solana"},
		{Chain: domain.ChainSolanaDevnet, Name: "Solana Devnet", Testnet: true},
		{Chain: domain.ChainSolanaTestnet, Name: "Solana Testnet", Testnet: true},
		{Chain: domain.ChainSuiMainnet, Name: "Sui"},
		{Chain: domain.ChainSuiTestnet, Name: "Sui Testnet", Testnet: true},
		{Chain: domain.ChainSuiDevnet, Name: "Sui Devnet", Testnet: true},
	}
}

// chainRegistry is the internal implementation of ChainRegistry interface
type chainRegistry struct {
	chains []ChainInfo
	// chain id -> index into chains
	index map[domain.Chain]int
}

// NewChainRegistry builds a registry from a list of chains.
// Later entries override earlier ones with the same chain id.
func NewChainRegistry(chains []ChainInfo) (ChainRegistry, error) {
	r := &chainRegistry{index: make(map[domain.Chain]int)}
	if err := r.merge(chains); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *chainRegistry) merge(chains []ChainInfo) error {
	for _, c := range chains {
		normalized, err := NormalizeChain(c.Chain)
		if err != nil {
			return err
		}
		c.Chain = normalized

		if i, ok := r.index[normalized]; ok {
			r.chains[i] = c
			continue
		}
		r.index[normalized] = len(r.chains)
		r.chains = append(r.chains, c)
	}

	sort.SliceStable(r.chains, func(i, j int) bool {
		return lessChain(r.chains[i].Chain, r.chains[j].Chain)
	})
	for i, c := range r.chains {
		r.index[c.Chain] = i
	}
	return nil
}

// Lookup returns the chain entry for a CAIP-2 chain id
func (r *chainRegistry) Lookup(chain domain.Chain) (*ChainInfo, bool) {
	if r == nil {
		return nil, false
	}
	normalized, err := NormalizeChain(chain)
	if err != nil {
		return nil, false
	}
	i, ok := r.index[normalized]
	if !ok {
		return nil, false
	}
	info := r.chains[i]
	return &info, true
}

// List returns all chains
func (r *chainRegistry) List() []ChainInfo {
	if r == nil {
		return nil
	}
	out := make([]ChainInfo, len(r.chains))
	copy(out, r.chains)
	return out
}

// Search ranks exact chain id matches first, then name prefix matches, then
// any other substring match on the name or chain id
func (r *chainRegistry) Search(query string, limit int) []ChainInfo {
	if r == nil {
		return nil
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return truncate(r.List(), limit)
	}

	type match struct {
		info ChainInfo
		rank int
	}
	var matches []match
	for _, c := range r.chains {
		chainID := strings.ToLower(string(c.Chain))
		name := strings.ToLower(c.Name)
		switch {
		case chainID == q:
			matches = append(matches, match{c, 0})
		case strings.HasPrefix(name, q):
			matches = append(matches, match{c, 1})
		case strings.Contains(name, q) || strings.Contains(chainID, q):
			matches = append(matches, match{c, 2})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].rank < matches[j].rank
	})

	out := make([]ChainInfo, len(matches))
	for i, m := range matches {
		out[i] = m.info
	}
	return truncate(out, limit)
}

// NormalizeChain validates a CAIP-2 chain id against the supported namespaces
// and returns it with a lowercase namespace (and lowercase network name for
// solana and sui)
func NormalizeChain(chain domain.Chain) (domain.Chain, error) {
	ns, ref, ok := chain.Parse()
	if !ok {
		return "", fmt.Errorf("%w: invalid chain id %q", domain.ErrChainNotFound, chain)
	}

	ns = domain.Namespace(strings.ToLower(string(ns)))
	if !domain.IsSupportedNamespace(ns) {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedNamespace, ns)
	}

	switch ns {
	case domain.NamespaceEIP155:
		if _, ok := caip10.ChainID(ref); !ok {
			return "", fmt.Errorf("%w: invalid eip155 chain id %q", domain.ErrChainNotFound, ref)
		}
	case domain.NamespaceSolana:
		ref = strings.ToLower(ref)
		if !contains(caip10.SolanaNetworks, ref) {
			return "", fmt.Errorf("%w: invalid solana network %q", domain.ErrChainNotFound, ref)
		}
	case domain.NamespaceSui:
		ref = strings.ToLower(ref)
		if !contains(caip10.SuiNetworks, ref) {
			return "", fmt.Errorf("%w: invalid sui network %q", domain.ErrChainNotFound, ref)
		}
	}

	return domain.NewChain(ns, ref), nil
}

// ChainRegistryLoader defines the interface for loading chain registries from files
type ChainRegistryLoader interface {
	// Load reads a chain registry JSON file and merges it over the default chains
	Load(filePath string) (ChainRegistry, error)
}

// chainRegistryLoader is the internal implementation of ChainRegistryLoader interface
type chainRegistryLoader struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewChainRegistryLoader creates a new ChainRegistryLoader with injected dependencies
func NewChainRegistryLoader(fs adapter.FileSystem, json adapter.JSON) ChainRegistryLoader {
	return &chainRegistryLoader{
		fs:   fs,
		json: json,
	}
}

// Load reads a chain registry JSON file and merges it over the default chains
func (l *chainRegistryLoader) Load(filePath string) (ChainRegistry, error) {
	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain registry file: %w", err)
	}

	var registryData ChainRegistryData
	if err := l.json.Unmarshal(data, &registryData); err != nil {
		return nil, fmt.Errorf("failed to parse chain registry JSON: %w", err)
	}

	r := &chainRegistry{index: make(map[domain.Chain]int)}
	if err := r.merge(DefaultChains()); err != nil {
		return nil, err
	}
	if err := r.merge(registryData.Chains); err != nil {
		return nil, fmt.Errorf("invalid chain registry entry: %w", err)
	}
	return r, nil
}

// lessChain orders by namespace, then numerically for numeric references
func lessChain(a, b domain.Chain) bool {
	nsA, refA, _ := a.Parse()
	nsB, refB, _ := b.Parse()
	if nsA != nsB {
		return nsA < nsB
	}
	numA, errA := strconv.ParseUint(refA, 10, 64)
	numB, errB := strconv.ParseUint(refB, 10, 64)
	if errA == nil && errB == nil {
		return numA < numB
	}
	return refA < refB
}

func truncate(chains []ChainInfo, limit int) []ChainInfo {
	if limit > 0 && len(chains) > limit {
		return chains[:limit]
	}
	return chains
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
