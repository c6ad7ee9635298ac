package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdk "github.com/whiteelite/solana-gateway/internal/infrastructure/blockchain/solana"
	pkgerrors "github.com/whiteelite/solana-gateway/pkg/errors"
)

type transferInput struct {
	From   string `json:"from" validate:"required"`
	To     string `json:"to" validate:"required"`
	Amount uint64 `json:"amount" validate:"gt=0"`
}

func TestStructPassesValidInput(t *testing.T) {
	assert.NoError(t, Struct(&transferInput{From: "a", To: "b", Amount: 1}))
}

func TestStructAmountWinsOverMissingFields(t *testing.T) {
	err := Struct(&transferInput{Amount: 0})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.Equal(t, MsgAmountNotPositive, typed.Message())

	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "is required", details["from"])
	assert.Equal(t, "must be greater than 0", details["amount"])
}

func TestStructMissingFields(t *testing.T) {
	err := Struct(&transferInput{From: "a", Amount: 3})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, MsgMissingFields, typed.Message())
}

func TestBuildErrorClassifiesInput(t *testing.T) {
	_, parseErr := sdk.ParsePublicKey("mint", "bad")
	typed := pkgerrors.As(BuildError(parseErr))
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeMalformed, typed.Code())
	assert.Contains(t, typed.Message(), "invalid mint")

	typed = pkgerrors.As(BuildError(errors.New("derivation failed")))
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeInternal, typed.Code())

	assert.NoError(t, BuildError(nil))
}
