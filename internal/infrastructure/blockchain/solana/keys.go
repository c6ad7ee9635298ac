package sdk

import (
	"bytes"
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/mr-tron/base58"
)

const (
	PublicKeyLength = 32
	SecretKeyLength = 64
	SignatureLength = 64
)

var (
	ErrEmpty              = errors.New("value is empty")
	ErrInvalidBase58      = errors.New("invalid base58 encoding")
	ErrInvalidBase64      = errors.New("invalid base64 encoding")
	ErrInvalidLength      = errors.New("invalid length")
	ErrKeypairMismatch    = errors.New("public key does not match secret seed")
	ErrDerivationExceeded = errors.New("associated token address derivation failed")
)

// InputError reports a field that could not be decoded into a key or signature.
type InputError struct {
	Field string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// IsInputError reports whether err was caused by malformed client input.
func IsInputError(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}

// ParsePublicKey decodes a base58 address. PublicKeyFromString does not
// validate its input, so decoding and length are checked here first.
func ParsePublicKey(field, value string) (common.PublicKey, error) {
	if value == "" {
		return common.PublicKey{}, &InputError{Field: field, Err: ErrEmpty}
	}
	raw, err := base58.Decode(value)
	if err != nil {
		return common.PublicKey{}, &InputError{Field: field, Err: ErrInvalidBase58}
	}
	if len(raw) != PublicKeyLength {
		return common.PublicKey{}, &InputError{
			Field: field,
			Err:   fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, PublicKeyLength, len(raw)),
		}
	}
	return common.PublicKeyFromBytes(raw), nil
}

// AccountFromSecret decodes a base58 64-byte secret (seed followed by public key).
func AccountFromSecret(field, secret string) (types.Account, error) {
	if secret == "" {
		return types.Account{}, &InputError{Field: field, Err: ErrEmpty}
	}
	privBytes, err := base58.Decode(secret)
	if err != nil {
		return types.Account{}, &InputError{Field: field, Err: ErrInvalidBase58}
	}
	if len(privBytes) != SecretKeyLength {
		return types.Account{}, &InputError{
			Field: field,
			Err:   fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, SecretKeyLength, len(privBytes)),
		}
	}

	derived := ed25519.NewKeyFromSeed(privBytes[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], privBytes[ed25519.SeedSize:]) {
		return types.Account{}, &InputError{Field: field, Err: ErrKeypairMismatch}
	}

	account, err := types.AccountFromBytes(privBytes)
	if err != nil {
		return types.Account{}, &InputError{Field: field, Err: err}
	}
	return account, nil
}

func decodeSignature(field, value string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, &InputError{Field: field, Err: ErrInvalidBase64}
	}
	if len(raw) != SignatureLength {
		return nil, &InputError{
			Field: field,
			Err:   fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, SignatureLength, len(raw)),
		}
	}
	return raw, nil
}
