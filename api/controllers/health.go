package controllers

import (
	"net/http"

	"github.com/whiteelite/solana-gateway/api/responses"
	"github.com/whiteelite/solana-gateway/pkg/config"
)

const envHeader = "X-Solana-Gateway-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady has nothing to probe: builds are offline and the audit
// stream is best effort.
func HealthReady(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
