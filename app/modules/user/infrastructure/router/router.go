package userrouter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	userhandlers "github.com/Clone-Wars-Club/arena-bot/app/modules/user/infrastructure/handlers"
)

// New returns the auth subrouter. The whole subtree is rate limited per IP.
func New(handlers *userhandlers.UserHandlers, rateLimit, requireAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(rateLimit)

	r.Post("/register", handlers.HandleRegister)
	r.Post("/token", handlers.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/me", handlers.HandleMe)
		r.Post("/change-password", handlers.HandleChangePassword)
	})

	return r
}
