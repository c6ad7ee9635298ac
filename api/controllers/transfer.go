package controllers

import (
	"net/http"

	"github.com/whiteelite/solana-gateway/api/responses"
	"github.com/whiteelite/solana-gateway/api/validators"
	"github.com/whiteelite/solana-gateway/internal/transfers"
	pkgerrors "github.com/whiteelite/solana-gateway/pkg/errors"
	"github.com/whiteelite/solana-gateway/pkg/logger"
)

func SendSOL(svc transfers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "transfer service unavailable"))
			return
		}

		var input transfers.SendSOLInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		transfer, err := svc.SendSOL(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, transfer)
	}
}

func SendToken(svc transfers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "transfer service unavailable"))
			return
		}

		var input transfers.SendTokenInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		transfer, err := svc.SendToken(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, transfer)
	}
}
