package did

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/feral-file/ff-identity/internal/domain"
)

var (
	didPattern = regexp.MustCompile(`^did:([a-z0-9]+):(.+)$`)
	pkhPattern = regexp.MustCompile(`^did:pkh:([^:]+):([^:]+):(.+)$`)
)

// ExtractMethod returns the method token of a raw DID, or empty if it is not a DID
func ExtractMethod(d string) string {
	m := didPattern.FindStringSubmatch(d)
	if m == nil {
		return ""
	}
	return m[1]
}

// ExtractIdentifier returns the method-specific identifier of a raw DID, or empty
func ExtractIdentifier(d string) string {
	m := didPattern.FindStringSubmatch(d)
	if m == nil {
		return ""
	}
	return m[2]
}

// IsValid checks only the generic did:<method>:<identifier> shape
func IsValid(d string) bool {
	return didPattern.MatchString(d)
}

// PKH is a decomposed did:pkh
type PKH struct {
	Namespace string
	Reference string
	Address   string
}

// ChainID returns the reference as an integer, as used by eip155 chains
func (p PKH) ChainID() (int64, bool) {
	id, err := strconv.ParseInt(p.Reference, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Chain returns the CAIP-2 chain of the did:pkh
func (p PKH) Chain() domain.Chain {
	return domain.NewChain(domain.Namespace(p.Namespace), p.Reference)
}

// ParsePKH decomposes a raw did:pkh into namespace, chain reference and address
func ParsePKH(d string) (*PKH, error) {
	m := pkhPattern.FindStringSubmatch(d)
	if m == nil {
		return nil, fmt.Errorf("%w: not a did:pkh identifier", domain.ErrInvalidDID)
	}
	return &PKH{
		Namespace: m[1],
		Reference: m[2],
		Address:   m[3],
	}, nil
}

// WebDomain returns the domain of a raw did:web, everything up to the first '/'
func WebDomain(d string) (string, error) {
	if !strings.HasPrefix(d, domain.DID_WEB_PREFIX) {
		return "", fmt.Errorf("%w: not a did:web identifier", domain.ErrInvalidDID)
	}
	host, _, _ := strings.Cut(strings.TrimPrefix(d, domain.DID_WEB_PREFIX), "/")
	if host == "" {
		return "", fmt.Errorf("%w: did:web requires a domain", domain.ErrInvalidDID)
	}
	return host, nil
}
