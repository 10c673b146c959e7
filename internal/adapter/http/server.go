package adapthttp

import (
	"net/http"
	"time"

	"healthlog/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	accounts     *app.AccountService
	measurements *app.MeasurementService
	methods      *app.MethodService
	ads          *app.AdService

	jwtSecret []byte
	tokenTTL  time.Duration
	oidc      OIDCConfig
}

// New creates a Server wired to the given application services.
func New(accounts *app.AccountService, measurements *app.MeasurementService, methods *app.MethodService, ads *app.AdService, jwtSecret []byte, tokenTTL time.Duration, oidc OIDCConfig) *Server {
	return &Server{
		accounts:     accounts,
		measurements: measurements,
		methods:      methods,
		ads:          ads,
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
		oidc:         oidc,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/auth/register", s.handleRegister)
	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	// Ad serving stays open; everything personal sits behind the token.
	api.HandleFunc("/ads", s.handleAds)
	api.HandleFunc("/ads/click", s.handleAdClick)

	api.Handle("/users", s.authMiddleware(http.HandlerFunc(s.handleUsers)))
	api.Handle("/methods", s.authMiddleware(http.HandlerFunc(s.handleMethods)))
	api.Handle("/measurements", s.authMiddleware(http.HandlerFunc(s.handleMeasurements)))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))

	return s.loggingMiddleware(root)
}
