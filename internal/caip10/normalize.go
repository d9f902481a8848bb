package caip10

import (
	"fmt"
	"strings"

	"github.com/feral-file/ff-identity/internal/domain"
)

// Normalize parses a CAIP-10 account and rewrites it into canonical form.
// Namespaces are a closed set: anything other than eip155, solana and sui fails.
func Normalize(input string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = failure(ErrorKindInvalidAddress, fmt.Sprintf("Failed to normalize account: %v", r))
		}
	}()

	account, err := Parse(input)
	if err != nil {
		return failure(ErrorKindParse, "Invalid CAIP-10 format. Expected namespace:reference:address")
	}

	ns := domain.Namespace(strings.ToLower(account.Namespace))
	reference := account.Reference

	if !domain.IsSupportedNamespace(ns) {
		return failure(ErrorKindUnsupportedNamespace, fmt.Sprintf("Unsupported namespace: %s. Supported: %s", account.Namespace, supportedList()))
	}

	var v Validation
	switch ns {
	case domain.NamespaceEIP155:
		v = ValidateEVM(reference, account.Address)
	case domain.NamespaceSolana:
		v = ValidateSolana(reference, account.Address)
		reference = strings.ToLower(reference)
	case domain.NamespaceSui:
		v = ValidateSui(reference, account.Address)
		reference = strings.ToLower(reference)
	}

	if !v.Valid {
		return failure(v.Kind, v.Error)
	}

	return success(Account{
		Namespace: string(ns),
		Reference: reference,
		Address:   v.NormalizedAddress,
	})
}

// NormalizeAccount normalizes an already parsed account
func NormalizeAccount(account Account) Result {
	return Normalize(account.String())
}

// IsValid reports whether the input normalizes successfully
func IsValid(input string) bool {
	return Normalize(input).Valid
}

func supportedList() string {
	names := make([]string, len(domain.SupportedNamespaces))
	for i, ns := range domain.SupportedNamespaces {
		names[i] = string(ns)
	}
	return strings.Join(names, ", ")
}
