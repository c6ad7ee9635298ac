package controllers

import (
	"net/http"

	"github.com/whiteelite/solana-gateway/api/responses"
	"github.com/whiteelite/solana-gateway/api/validators"
	"github.com/whiteelite/solana-gateway/internal/tokens"
	pkgerrors "github.com/whiteelite/solana-gateway/pkg/errors"
	"github.com/whiteelite/solana-gateway/pkg/logger"
)

// TokenCreate returns an InitializeMint instruction.
func TokenCreate(svc tokens.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "token service unavailable"))
			return
		}

		var input tokens.CreateTokenInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		inst, err := svc.CreateToken(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, inst)
	}
}

// TokenMint returns a MintTo instruction.
func TokenMint(svc tokens.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "token service unavailable"))
			return
		}

		var input tokens.MintTokenInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		inst, err := svc.MintToken(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, inst)
	}
}

func TokenAccountCreate(svc tokens.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "token service unavailable"))
			return
		}

		var input tokens.CreateTokenAccountInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		account, err := svc.CreateTokenAccount(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, account)
	}
}
