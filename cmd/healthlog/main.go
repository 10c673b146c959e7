package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	adapthttp "healthlog/internal/adapter/http"
	"healthlog/internal/adapter/postgres"
	"healthlog/internal/app"
	"healthlog/internal/config"
	"healthlog/internal/domain"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() { _ = db.Close() }()

	accountSvc := app.NewAccountService(db, cfg.BcryptCost)
	measurementSvc := app.NewMeasurementService(db, db)
	methodSvc := app.NewMethodService(db)
	adSvc := app.NewAdService(db)

	ctx := context.Background()
	seedAdmin(ctx, accountSvc, cfg)

	oidcCfg, err := buildOIDC(ctx, cfg)
	if err != nil {
		log.Fatalf("oidc init: %v", err)
	}

	h := adapthttp.New(accountSvc, measurementSvc, methodSvc, adSvc, []byte(cfg.JWTSecret), cfg.TokenTTL, oidcCfg).Handler()
	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// seedAdmin registers the configured admin account on first boot.
func seedAdmin(ctx context.Context, accounts *app.AccountService, cfg config.Config) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}
	_, err := accounts.Register(ctx, "admin", cfg.AdminEmail, cfg.AdminPassword, nil, nil)
	if err != nil && !errors.Is(err, domain.ErrDuplicateEmail) {
		log.Fatalf("seed admin: %v", err)
	}
}

func buildOIDC(ctx context.Context, cfg config.Config) (adapthttp.OIDCConfig, error) {
	if !cfg.SSOEnabled() {
		return adapthttp.OIDCConfig{}, nil
	}
	provider, err := oidc.NewProvider(ctx, cfg.OIDCIssuer)
	if err != nil {
		return adapthttp.OIDCConfig{}, err
	}
	return adapthttp.OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: oauth2.Config{
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			RedirectURL:  cfg.OIDCRedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		},
	}, nil
}
