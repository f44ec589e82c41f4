package handlers

import (
	"net/http"

	"github.com/clipstream/backend/internal/middleware"
)

// Dependencies aggregates collaborators required by HTTP handlers.
type Dependencies struct {
	Users    UserStore
	Videos   VideoStore
	Sessions SessionManager
	Playback PlaybackTokens
}

// RegisterRoutes wires HTTP handlers into the provided ServeMux. Protected
// routes are wrapped with the session-token gate; handlers behind it read the
// caller identity from the request context and never re-validate it.
func RegisterRoutes(mux *http.ServeMux, deps Dependencies) {
	health := HealthHandler{}
	authHandler := AuthHandler{Users: deps.Users, Sessions: deps.Sessions}
	dashboard := DashboardHandler{Videos: deps.Videos, Playback: deps.Playback}
	stream := StreamHandler{Videos: deps.Videos, Playback: deps.Playback}

	requireAuth := middleware.RequireAuth(deps.Sessions)

	mux.HandleFunc("GET /healthz", health.Handle)
	mux.HandleFunc("POST /auth/signup", authHandler.SignUp)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.Handle("GET /auth/me", requireAuth(http.HandlerFunc(authHandler.Me)))
	mux.Handle("POST /auth/logout", requireAuth(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /dashboard", requireAuth(http.HandlerFunc(dashboard.List)))
	mux.Handle("GET /video/{id}/stream", requireAuth(http.HandlerFunc(stream.Resolve)))
}
