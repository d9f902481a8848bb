package encoding

import (
	"errors"
	"fmt"
	"math/big"
)

// Bitcoin/Solana base58 alphabet: digits and letters without 0, O, I and l
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// MAX_BASE58_INPUT_LENGTH bounds the quadratic big.Int accumulation on untrusted input
const MAX_BASE58_INPUT_LENGTH = 128

var (
	// ErrInvalidBase58Character is returned when the input has a character outside the alphabet
	ErrInvalidBase58Character = errors.New("invalid base58 character")

	// ErrBase58TooLong is returned when the input exceeds MAX_BASE58_INPUT_LENGTH
	ErrBase58TooLong = errors.New("base58 string too long")
)

var (
	base58Map [256]byte
	bigRadix  = big.NewInt(58)
	bigZero   = big.NewInt(0)
)

func init() {
	for i := range base58Map {
		base58Map[i] = 255
	}
	for i := 0; i < len(base58Alphabet); i++ {
		base58Map[base58Alphabet[i]] = byte(i)
	}
}

// IsBase58 checks if a non-empty string consists only of base58 alphabet characters
func IsBase58(input string) bool {
	if input == "" {
		return false
	}
	for i := 0; i < len(input); i++ {
		if base58Map[input[i]] == 255 {
			return false
		}
	}
	return true
}

// DecodeBase58 decodes a base58 string into bytes.
// Each leading '1' becomes one leading zero byte.
func DecodeBase58(input string) ([]byte, error) {
	if len(input) > MAX_BASE58_INPUT_LENGTH {
		return nil, fmt.Errorf("%w: %d characters", ErrBase58TooLong, len(input))
	}

	leadingZeros := 0
	for leadingZeros < len(input) && input[leadingZeros] == base58Alphabet[0] {
		leadingZeros++
	}

	x := new(big.Int)
	digit := new(big.Int)
	for i := 0; i < len(input); i++ {
		v := base58Map[input[i]]
		if v == 255 {
			return nil, fmt.Errorf("%w %q at position %d", ErrInvalidBase58Character, input[i], i)
		}
		x.Mul(x, bigRadix)
		x.Add(x, digit.SetInt64(int64(v)))
	}

	body := x.Bytes()
	result := make([]byte, leadingZeros+len(body))
	copy(result[leadingZeros:], body)
	return result, nil
}

// EncodeBase58 encodes bytes as a base58 string
func EncodeBase58(input []byte) string {
	if len(input) == 0 {
		return ""
	}

	x := new(big.Int).SetBytes(input)
	mod := new(big.Int)
	var result []byte
	for x.Cmp(bigZero) > 0 {
		x.DivMod(x, bigRadix, mod)
		result = append(result, base58Alphabet[mod.Int64()])
	}

	for _, b := range input {
		if b != 0 {
			break
		}
		result = append(result, base58Alphabet[0])
	}

	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return string(result)
}
