package controllers

import (
	"net/http"

	"github.com/whiteelite/solana-gateway/api/responses"
	"github.com/whiteelite/solana-gateway/api/validators"
	"github.com/whiteelite/solana-gateway/internal/messages"
	pkgerrors "github.com/whiteelite/solana-gateway/pkg/errors"
	"github.com/whiteelite/solana-gateway/pkg/logger"
)

func MessageSign(svc messages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "message service unavailable"))
			return
		}

		var input messages.SignInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		signature, err := svc.Sign(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, signature)
	}
}

// MessageVerify answers valid=false for a signature that does not match.
func MessageVerify(svc messages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "message service unavailable"))
			return
		}

		var input messages.VerifyInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.Verify(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
