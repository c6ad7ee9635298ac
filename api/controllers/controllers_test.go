package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whiteelite/solana-gateway/internal/tokens"
	"github.com/whiteelite/solana-gateway/internal/transfers"
	"github.com/whiteelite/solana-gateway/pkg/config"
	pkgerrors "github.com/whiteelite/solana-gateway/pkg/errors"
	"github.com/whiteelite/solana-gateway/pkg/logger"
)

type stubTokenService struct {
	err       error
	lastMint  tokens.MintTokenInput
	mintCalls int
}

func (s *stubTokenService) CreateToken(context.Context, tokens.CreateTokenInput) (tokens.InstructionDTO, error) {
	return tokens.InstructionDTO{}, s.err
}

func (s *stubTokenService) MintToken(_ context.Context, input tokens.MintTokenInput) (tokens.InstructionDTO, error) {
	s.mintCalls++
	s.lastMint = input
	if s.err != nil {
		return tokens.InstructionDTO{}, s.err
	}
	return tokens.InstructionDTO{ProgramID: "prog", Accounts: []tokens.AccountMetaDTO{}, InstructionData: "Bw=="}, nil
}

func (s *stubTokenService) CreateTokenAccount(context.Context, tokens.CreateTokenAccountInput) (tokens.TokenAccountDTO, error) {
	return tokens.TokenAccountDTO{}, s.err
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func serve(t *testing.T, handler http.HandlerFunc, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestTokenMintPassesDecodedInput(t *testing.T) {
	svc := &stubTokenService{}
	rec, env := serve(t, TokenMint(svc, logger.Nop()), `{"mint":"m","destination":"d","authority":"a","amount":5}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"program_id":"prog","accounts":[],"instruction_data":"Bw=="}`, string(env.Data))
	assert.Equal(t, tokens.MintTokenInput{Mint: "m", Destination: "d", Authority: "a", Amount: 5}, svc.lastMint)
}

func TestTokenMintInternalFailureIs500(t *testing.T) {
	svc := &stubTokenService{err: pkgerrors.Wrap(pkgerrors.CodeInternal, errors.New("bad decimals"), "instruction build failed")}
	rec, env := serve(t, TokenMint(svc, logger.Nop()), `{"mint":"m","destination":"d","authority":"a","amount":5}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "internal server error", env.Error)
}

func TestMalformedJSONIs400WithoutCallingService(t *testing.T) {
	svc := &stubTokenService{}
	rec, env := serve(t, TokenMint(svc, logger.Nop()), `{"mint":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
	assert.Zero(t, svc.mintCalls)
}

func TestNilServiceIs500(t *testing.T) {
	rec, env := serve(t, SendSOL(transfers.Service(nil), logger.Nop()), `{}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, env.Success)
}

func TestHealthLive(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: "dev"}}
	rec := httptest.NewRecorder()
	HealthLive(cfg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dev", rec.Header().Get(envHeader))
	assert.JSONEq(t, `{"success":true,"data":{"status":"live"}}`, rec.Body.String())
}
