package binding

import (
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/feral-file/ff-identity/internal/caip10"
	"github.com/feral-file/ff-identity/internal/domain"
	"github.com/feral-file/ff-identity/internal/encoding"
)

// Verifier checks ownership proofs for CAIP-10 accounts
//
//go:generate mockgen -source=verifier.go -destination=../mocks/verifier.go -package=mocks -mock_names=Verifier=MockVerifier
type Verifier interface {
	// Verify returns nil when signature is a valid signature of message by account
	Verify(account string, message string, signature string) error
}

type verifier struct{}

// NewVerifier creates a new Verifier
func NewVerifier() Verifier {
	return &verifier{}
}

// Verify dispatches on the account namespace. eip155 expects an EIP-191 personal
// signature in hex, solana an ed25519 signature in base58. sui is not supported.
func (v *verifier) Verify(account string, message string, signature string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", domain.ErrInvalidSignature, r)
		}
	}()

	result := caip10.Normalize(account)
	if !result.Valid {
		return result.Err()
	}

	switch domain.Namespace(result.Parsed.Namespace) {
	case domain.NamespaceEIP155:
		return verifyEVM(result.Parsed.Address, message, signature)
	case domain.NamespaceSolana:
		return verifySolana(result.Parsed.Address, message, signature)
	default:
		return fmt.Errorf("%w: ownership proofs are not supported for %s", domain.ErrUnsupportedNamespace, result.Parsed.Namespace)
	}
}

func verifyEVM(address string, message string, signature string) error {
	if !strings.HasPrefix(signature, "0x") {
		signature = "0x" + signature
	}
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return fmt.Errorf("%w: signature is not hex: %v", domain.ErrInvalidSignature, err)
	}
	if len(sig) != crypto.SignatureLength {
		return fmt.Errorf("%w: signature must be %d bytes, got %d", domain.ErrInvalidSignature, crypto.SignatureLength, len(sig))
	}

	// wallets return v as 27/28; recovery expects 0/1
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}
	if sig[crypto.RecoveryIDOffset] > 1 {
		return fmt.Errorf("%w: invalid recovery id", domain.ErrInvalidSignature)
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
	}

	recovered := crypto.PubkeyToAddress(*pub)
	if recovered != common.HexToAddress(address) {
		return fmt.Errorf("%w: signer %s does not match account", domain.ErrInvalidSignature, recovered.Hex())
	}
	return nil
}

func verifySolana(address string, message string, signature string) error {
	pub, err := encoding.DecodeBase58(address)
	if err != nil || len(pub) != ed25519.PublicKeySize {
		return fmt.Errorf("%w: account is not an ed25519 public key", domain.ErrInvalidSignature)
	}

	sig, err := encoding.DecodeBase58(signature)
	if err != nil {
		return fmt.Errorf("%w: signature is not base58: %v", domain.ErrInvalidSignature, err)
	}
	if len(sig) != ed25519.SignatureSize {
		return fmt.Errorf("%w: signature must be %d bytes, got %d", domain.ErrInvalidSignature, ed25519.SignatureSize, len(sig))
	}

	if !ed25519.Verify(ed25519.PublicKey(pub), []byte(message), sig) {
		return fmt.Errorf("%w: signature does not match account", domain.ErrInvalidSignature)
	}
	return nil
}
