package caip10

import (
	"fmt"
	"regexp"

	"github.com/feral-file/ff-identity/internal/domain"
)

// accountPattern captures namespace and reference up to the first two colons; the
// address keeps everything after the second colon, colons and slashes included
var accountPattern = regexp.MustCompile(`^([^:]+):([^:]+):(.+)$`)

// Account is a CAIP-10 account identifier: namespace:reference:address
type Account struct {
	Namespace string `json:"namespace"`
	Reference string `json:"reference"`
	Address   string `json:"address"`
}

// Parse splits a CAIP-10 string into its three segments.
// Casing is preserved; normalization is namespace specific and happens in Normalize.
func Parse(input string) (*Account, error) {
	if input == "" {
		return nil, fmt.Errorf("%w: account is empty", domain.ErrInvalidCAIP10)
	}

	m := accountPattern.FindStringSubmatch(input)
	if m == nil {
		return nil, fmt.Errorf("%w: expected namespace:reference:address", domain.ErrInvalidCAIP10)
	}

	return &Account{
		Namespace: m[1],
		Reference: m[2],
		Address:   m[3],
	}, nil
}

// Build joins the three segments with colons
func Build(namespace, reference, address string) string {
	return namespace + ":" + reference + ":" + address
}

// String returns the CAIP-10 representation of the account
func (a Account) String() string {
	return Build(a.Namespace, a.Reference, a.Address)
}

// Chain returns the CAIP-2 chain the account lives on
func (a Account) Chain() domain.Chain {
	return domain.NewChain(domain.Namespace(a.Namespace), a.Reference)
}
