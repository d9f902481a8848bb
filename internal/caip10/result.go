package caip10

import (
	"fmt"

	"github.com/feral-file/ff-identity/internal/domain"
)

// ErrorKind classifies a normalization failure
type ErrorKind string

const (
	ErrorKindParse                ErrorKind = "parse"
	ErrorKindUnsupportedNamespace ErrorKind = "unsupported_namespace"
	ErrorKindInvalidReference     ErrorKind = "invalid_reference"
	ErrorKindInvalidAddress       ErrorKind = "invalid_address"
	ErrorKindChecksum             ErrorKind = "checksum"
)

// Result is the outcome of Normalize. Normalized and Parsed are set iff Valid;
// Error and Kind are set iff not Valid.
type Result struct {
	Valid      bool      `json:"valid"`
	Normalized string    `json:"normalized,omitempty"`
	Parsed     *Account  `json:"parsed,omitempty"`
	Error      string    `json:"error,omitempty"`
	Kind       ErrorKind `json:"kind,omitempty"`
}

func success(account Account) Result {
	return Result{
		Valid:      true,
		Normalized: account.String(),
		Parsed:     &account,
	}
}

func failure(kind ErrorKind, message string) Result {
	return Result{
		Error: message,
		Kind:  kind,
	}
}

// Err converts a failed result into an error wrapping the matching domain sentinel.
// It returns nil for a valid result.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}

	switch r.Kind {
	case ErrorKindUnsupportedNamespace:
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedNamespace, r.Error)
	case ErrorKindInvalidAddress, ErrorKindChecksum:
		return fmt.Errorf("%w: %s", domain.ErrInvalidAddress, r.Error)
	default:
		return fmt.Errorf("%w: %s", domain.ErrInvalidCAIP10, r.Error)
	}
}

// Validation is the outcome of a namespace validator
type Validation struct {
	Valid             bool
	NormalizedAddress string
	Error             string
	Kind              ErrorKind
}

func validAddress(address string) Validation {
	return Validation{Valid: true, NormalizedAddress: address}
}

func invalid(kind ErrorKind, format string, args ...any) Validation {
	return Validation{Error: fmt.Sprintf(format, args...), Kind: kind}
}
