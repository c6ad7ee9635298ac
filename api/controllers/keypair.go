package controllers

import (
	"net/http"

	"github.com/whiteelite/solana-gateway/api/responses"
	"github.com/whiteelite/solana-gateway/internal/keypairs"
	pkgerrors "github.com/whiteelite/solana-gateway/pkg/errors"
	"github.com/whiteelite/solana-gateway/pkg/logger"
)

func GenerateKeypair(svc keypairs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "keypair service unavailable"))
			return
		}

		keypair, err := svc.Generate(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, keypair)
	}
}
