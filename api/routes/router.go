package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/whiteelite/solana-gateway/api/controllers"
	"github.com/whiteelite/solana-gateway/api/middleware"
	"github.com/whiteelite/solana-gateway/api/responses"
	"github.com/whiteelite/solana-gateway/internal/keypairs"
	"github.com/whiteelite/solana-gateway/internal/messages"
	"github.com/whiteelite/solana-gateway/internal/tokens"
	"github.com/whiteelite/solana-gateway/internal/transfers"
	"github.com/whiteelite/solana-gateway/pkg/config"
	pkgerrors "github.com/whiteelite/solana-gateway/pkg/errors"
	"github.com/whiteelite/solana-gateway/pkg/logger"
	"github.com/whiteelite/solana-gateway/pkg/metrics"
)

// Services groups the domain services served by the router.
type Services struct {
	Keypairs  keypairs.Service
	Tokens    tokens.Service
	Messages  messages.Service
	Transfers transfers.Service
}

// Observability carries the optional metrics wiring. A nil MetricsHandler
// leaves the metrics path unrouted.
type Observability struct {
	HTTPMetrics    *metrics.HTTPMetrics
	MetricsHandler http.Handler
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	services Services,
	obs Observability,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(obs.HTTPMetrics),
		middleware.CORS(cfg.HTTP.CORSAllowedOrigins),
		middleware.BodyLimit(cfg.HTTP.MaxBodyBytes),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeMethodNotAllowed, "method not allowed"))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if cfg.Metrics.Enabled && obs.MetricsHandler != nil {
		r.Handle(cfg.Metrics.Path, obs.MetricsHandler)
	}

	r.Post("/keypair", controllers.GenerateKeypair(services.Keypairs, logg))

	r.Route("/token", func(r chi.Router) {
		r.Post("/create", controllers.TokenCreate(services.Tokens, logg))
		r.Post("/mint", controllers.TokenMint(services.Tokens, logg))
		r.Post("/account", controllers.TokenAccountCreate(services.Tokens, logg))
	})

	r.Route("/message", func(r chi.Router) {
		r.Post("/sign", controllers.MessageSign(services.Messages, logg))
		r.Post("/verify", controllers.MessageVerify(services.Messages, logg))
	})

	r.Route("/send", func(r chi.Router) {
		r.Post("/sol", controllers.SendSOL(services.Transfers, logg))
		r.Post("/token", controllers.SendToken(services.Transfers, logg))
	})

	return r
}
