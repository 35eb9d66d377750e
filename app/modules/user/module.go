package user

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	auditdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/audit/domain"
	userservice "github.com/Clone-Wars-Club/arena-bot/app/modules/user/application"
	userhandlers "github.com/Clone-Wars-Club/arena-bot/app/modules/user/infrastructure/handlers"
	userjwt "github.com/Clone-Wars-Club/arena-bot/app/modules/user/infrastructure/jwt"
	userdb "github.com/Clone-Wars-Club/arena-bot/app/modules/user/infrastructure/repositories"
	userrouter "github.com/Clone-Wars-Club/arena-bot/app/modules/user/infrastructure/router"
	"github.com/Clone-Wars-Club/arena-bot/config"
)

// Module bundles the account service, its HTTP surface and the auth
// middleware the other modules mount.
type Module struct {
	Service      userservice.Service
	Handlers     *userhandlers.UserHandlers
	Router       chi.Router
	RequireAuth  func(http.Handler) http.Handler
	RequireAdmin func(http.Handler) http.Handler
}

// NewModule creates the user module.
func NewModule(
	db *bun.DB,
	cfg *config.Config,
	auditor auditdomain.Recorder,
	logger *slog.Logger,
	tracer trace.Tracer,
) *Module {
	repo := userdb.NewRepository(db)
	provider := userjwt.NewProvider(cfg.JWT.Secret)
	service := userservice.NewUserService(repo, provider, cfg.JWT.DefaultTTL, auditor, logger, tracer)
	handlers := userhandlers.NewUserHandlers(service, logger)

	limiter := userhandlers.NewIPRateLimiter(rate.Limit(cfg.Auth.LoginRatePerSecond), cfg.Auth.LoginBurst)
	rateLimit := userhandlers.RateLimitMiddleware(limiter)
	requireAuth := userhandlers.AuthMiddleware(service)

	return &Module{
		Service:      service,
		Handlers:     handlers,
		Router:       userrouter.New(handlers, rateLimit, requireAuth),
		RequireAuth:  requireAuth,
		RequireAdmin: userhandlers.RequireAdmin,
	}
}
