package router

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"assistant-backend/internal/handlers"
	"assistant-backend/internal/middleware"
)

func New(
	basicAuth *middleware.BasicAuth,
	loginHandler *handlers.LoginHandler,
	configHandler *handlers.ConfigHandler,
	chatHandler *handlers.ChatHandler,
	frontendURL string,
	staticDir string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Gate policy: only the config surface requires Basic auth. Chat needs
	// no end-user identity and login must stay reachable, so both are open.
	r.Route("/api", func(r chi.Router) {
		r.Post("/login", loginHandler.Login)
		r.Post("/chat", chatHandler.Chat)

		r.Group(func(r chi.Router) {
			r.Use(basicAuth.Middleware)
			r.Get("/config", configHandler.Get)
			r.Post("/config", configHandler.Save)
		})
	})

	// Static chat UI, when deployed alongside the backend.
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			r.Handle("/*", http.FileServer(http.Dir(staticDir)))
		}
	}

	return r
}
