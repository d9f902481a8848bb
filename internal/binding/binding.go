package binding

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/feral-file/ff-identity/internal/adapter"
	"github.com/feral-file/ff-identity/internal/caip10"
	"github.com/feral-file/ff-identity/internal/did"
	"github.com/feral-file/ff-identity/internal/domain"
)

const (
	MESSAGE_HEADER = "Link account to decentralized identifier"

	// MAX_PROOF_AGE is how long a signed binding message stays acceptable
	MAX_PROOF_AGE = 10 * time.Minute

	// MAX_CLOCK_SKEW is how far in the future a signed Issued At may be
	MAX_CLOCK_SKEW = time.Minute
)

// Record binds a DID to a blockchain account
type Record struct {
	DID        string    `json:"did"`
	DIDHash    string    `json:"did_hash"`
	DIDAddress string    `json:"did_address"`
	Account    string    `json:"account"`
	IssuedAt   time.Time `json:"issued_at"`
}

// recordContent is the part of a record that identifies it; IssuedAt is excluded
// so re-issuing the same binding yields the same ID
type recordContent struct {
	DID        string `json:"did"`
	DIDHash    string `json:"did_hash"`
	DIDAddress string `json:"did_address"`
	Account    string `json:"account"`
}

// Binder defines the interface for creating and verifying DID-account bindings
//
//go:generate mockgen -source=binding.go -destination=../mocks/binder.go -package=mocks -mock_names=Binder=MockBinder
type Binder interface {
	// NewRecord normalizes the DID and account and derives the DID hash and address
	NewRecord(d string, account string) (*Record, error)

	// ID returns the keccak-256 hash of the JCS-canonical record content
	ID(record *Record) (string, error)

	// Bind checks that message is a fresh binding message for exactly this DID and
	// account, and that signature proves control of the account over it
	Bind(d string, account string, message string, signature string) (*Record, string, error)
}

type binder struct {
	jcs      adapter.JCS
	json     adapter.JSON
	clock    adapter.Clock
	verifier Verifier
}

// NewBinder creates a new Binder with injected dependencies
func NewBinder(jcs adapter.JCS, json adapter.JSON, clock adapter.Clock, verifier Verifier) Binder {
	return &binder{
		jcs:      jcs,
		json:     json,
		clock:    clock,
		verifier: verifier,
	}
}

// NewRecord normalizes the DID and account and derives the DID hash and address
func (b *binder) NewRecord(d string, account string) (*Record, error) {
	normalizedDID, err := did.Normalize(d)
	if err != nil {
		return nil, err
	}

	result := caip10.Normalize(account)
	if !result.Valid {
		return nil, result.Err()
	}

	didHash, err := did.ComputeDIDHash(normalizedDID)
	if err != nil {
		return nil, err
	}
	didAddress, err := did.ComputeDIDAddress(didHash)
	if err != nil {
		return nil, err
	}

	return &Record{
		DID:        normalizedDID,
		DIDHash:    didHash,
		DIDAddress: didAddress,
		Account:    result.Normalized,
		IssuedAt:   b.clock.Now().UTC().Truncate(time.Second),
	}, nil
}

// ID returns the keccak-256 hash of the JCS-canonical record content
func (b *binder) ID(record *Record) (string, error) {
	if record == nil {
		return "", fmt.Errorf("record cannot be nil")
	}

	data, err := b.json.Marshal(recordContent{
		DID:        record.DID,
		DIDHash:    record.DIDHash,
		DIDAddress: record.DIDAddress,
		Account:    record.Account,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal binding record: %w", err)
	}

	canonical, err := b.jcs.Transform(data)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize binding record: %w", err)
	}

	return crypto.Keccak256Hash(canonical).Hex(), nil
}

// Bind creates a record and verifies the ownership proof.
// The record carries the Issued At of the signed message.
func (b *binder) Bind(d string, account string, message string, signature string) (*Record, string, error) {
	record, err := b.NewRecord(d, account)
	if err != nil {
		return nil, "", err
	}

	signed, err := ParseMessage(message)
	if err != nil {
		return nil, "", err
	}

	signedDID, err := did.Normalize(signed.DID)
	if err != nil || signedDID != record.DID {
		return nil, "", fmt.Errorf("%w: message is for DID %q, not %s", domain.ErrInvalidSignature, signed.DID, record.DID)
	}

	signedAccount := caip10.Normalize(signed.Account)
	if !signedAccount.Valid || signedAccount.Normalized != record.Account {
		return nil, "", fmt.Errorf("%w: message is for account %q, not %s", domain.ErrInvalidSignature, signed.Account, record.Account)
	}

	now := b.clock.Now()
	if now.Sub(signed.IssuedAt) > MAX_PROOF_AGE {
		return nil, "", fmt.Errorf("%w: message issued at %s has expired", domain.ErrInvalidSignature, signed.IssuedAt.Format(time.RFC3339))
	}
	if signed.IssuedAt.Sub(now) > MAX_CLOCK_SKEW {
		return nil, "", fmt.Errorf("%w: message issued at %s is in the future", domain.ErrInvalidSignature, signed.IssuedAt.Format(time.RFC3339))
	}
	record.IssuedAt = signed.IssuedAt

	if err := b.verifier.Verify(record.Account, message, signature); err != nil {
		return nil, "", err
	}

	id, err := b.ID(record)
	if err != nil {
		return nil, "", err
	}
	return record, id, nil
}

// Message returns the text a wallet signs to prove control of the record account
func Message(record *Record) string {
	return fmt.Sprintf("%s\n\nDID: %s\nAccount: %s\nIssued At: %s",
		MESSAGE_HEADER,
		record.DID,
		record.Account,
		record.IssuedAt.Format(time.RFC3339),
	)
}

// SignedMessage holds the fields of a binding message as written by the signer
type SignedMessage struct {
	DID      string
	Account  string
	IssuedAt time.Time
}

// ParseMessage reads a message in the layout produced by Message.
// Field values are returned as written; callers normalize them.
func ParseMessage(message string) (*SignedMessage, error) {
	lines := strings.Split(message, "\n")
	if len(lines) != 5 || lines[0] != MESSAGE_HEADER || lines[1] != "" {
		return nil, fmt.Errorf("%w: not a binding message", domain.ErrInvalidSignature)
	}

	d, okDID := strings.CutPrefix(lines[2], "DID: ")
	account, okAccount := strings.CutPrefix(lines[3], "Account: ")
	issued, okIssued := strings.CutPrefix(lines[4], "Issued At: ")
	if !okDID || !okAccount || !okIssued {
		return nil, fmt.Errorf("%w: binding message fields are malformed", domain.ErrInvalidSignature)
	}

	issuedAt, err := time.Parse(time.RFC3339, issued)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid Issued At: %v", domain.ErrInvalidSignature, err)
	}

	return &SignedMessage{
		DID:      d,
		Account:  account,
		IssuedAt: issuedAt.UTC(),
	}, nil
}
