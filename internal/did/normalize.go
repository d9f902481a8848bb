package did

import (
	"fmt"
	"strings"

	"github.com/feral-file/ff-identity/internal/caip10"
	"github.com/feral-file/ff-identity/internal/domain"
)

// Normalize returns the canonical form of a DID.
//
// Input without a "did:" prefix is treated as a bare did:web domain. did:web,
// did:pkh and did:handle have canonicalization rules; did:key, did:artifact and
// did:ethr are only trimmed. Any other method is returned trimmed and otherwise
// unchanged: unknown methods are passed through, never rejected.
func Normalize(input string) (string, error) {
	d := strings.TrimSpace(input)
	if d == "" {
		return "", fmt.Errorf("%w: empty input", domain.ErrInvalidDID)
	}

	if !strings.HasPrefix(d, domain.DID_PREFIX) {
		return normalizeWeb(d)
	}

	method, _, _ := strings.Cut(strings.TrimPrefix(d, domain.DID_PREFIX), ":")
	switch domain.DIDMethod(method) {
	case domain.DIDMethodWeb:
		return normalizeWeb(d)
	case domain.DIDMethodPKH:
		return normalizePKH(d)
	case domain.DIDMethodHandle:
		return normalizeHandle(d)
	case domain.DIDMethodKey, domain.DIDMethodArtifact, domain.DIDMethodEthr:
		// multibase keys and contract identifiers are case sensitive
		return d, nil
	default:
		return d, nil
	}
}

// MustNormalize is like Normalize but returns the trimmed input when normalization fails
func MustNormalize(input string) string {
	n, err := Normalize(input)
	if err != nil {
		return strings.TrimSpace(input)
	}
	return n
}

// normalizeWeb lowercases the host and keeps the path casing
func normalizeWeb(d string) (string, error) {
	var rest string
	switch {
	case strings.HasPrefix(d, domain.DID_WEB_PREFIX):
		rest = strings.TrimPrefix(d, domain.DID_WEB_PREFIX)
	case strings.HasPrefix(d, domain.DID_PREFIX):
		return "", fmt.Errorf("%w: %s is not a did:web identifier", domain.ErrInvalidDID, d)
	default:
		rest = d
	}

	host, path, hasPath := strings.Cut(rest, "/")
	if host == "" {
		return "", fmt.Errorf("%w: did:web requires a domain", domain.ErrInvalidDID)
	}

	normalized := domain.DID_WEB_PREFIX + strings.ToLower(host)
	if hasPath {
		normalized += "/" + path
	}
	return normalized, nil
}

// normalizePKH expects did:pkh:namespace:chainId:address and folds the address casing
func normalizePKH(d string) (string, error) {
	parts := strings.Split(d, ":")
	if len(parts) != 5 {
		return "", fmt.Errorf("%w: did:pkh must be did:pkh:namespace:chainId:address, got %d segments", domain.ErrInvalidDID, len(parts))
	}

	parts[4] = domain.FoldAddressCase(domain.Namespace(parts[2]), parts[4])
	return strings.Join(parts, ":"), nil
}

// normalizeHandle expects did:handle:platform:username; only the platform is lowercased
func normalizeHandle(d string) (string, error) {
	parts := strings.Split(d, ":")
	if len(parts) != 4 {
		return "", fmt.Errorf("%w: did:handle must be did:handle:platform:username, got %d segments", domain.ErrInvalidDID, len(parts))
	}

	parts[2] = strings.ToLower(parts[2])
	return strings.Join(parts, ":"), nil
}

// FromCAIP10 builds the normalized did:pkh for a CAIP-10 account
func FromCAIP10(account string) (string, error) {
	result := caip10.Normalize(account)
	if !result.Valid {
		return "", result.Err()
	}
	return domain.NewDID(result.Parsed.Address, result.Parsed.Chain()).String(), nil
}
