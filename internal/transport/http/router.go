package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/scode24/dsa-tracker-backend/internal/application/entry"
	"github.com/scode24/dsa-tracker-backend/internal/application/otp"
	"github.com/scode24/dsa-tracker-backend/internal/application/user"
	"github.com/scode24/dsa-tracker-backend/internal/config"
	"github.com/scode24/dsa-tracker-backend/internal/transport/http/handler"
	appmiddleware "github.com/scode24/dsa-tracker-backend/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "email", "otp", "searchValue"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authMw := appmiddleware.Auth(deps.JWTProvider)

	// 5 requests/second, burst of 10, applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	userSvc := user.NewService(user.ServiceDeps{UserRepo: deps.UserRepo, Signer: deps.JWTProvider})
	entrySvc := entry.NewService(deps.EntryRepo)
	otpSvc := otp.NewService(otp.ServiceDeps{Ledger: deps.OtpRepo, Mailer: deps.Mailer, TTL: cfg.OTPTTL})

	healthH := handler.NewHealthHandler()
	userH := handler.NewUserHandler(userSvc)
	entryH := handler.NewEntryHandler(entrySvc)
	otpH := handler.NewOtpHandler(otpSvc)

	// ── Public routes (no auth) ──────────────────────────────────────────
	r.Get("/health", healthH.Ping)
	r.With(sensitiveRL.Limit).Post("/login", userH.Login)
	r.With(sensitiveRL.Limit).Post("/register", userH.Register)
	r.Get("/checkValidEmail", userH.CheckValidEmail)
	r.With(sensitiveRL.Limit).Post("/resetPassword", userH.ResetPassword)
	r.With(sensitiveRL.Limit).Post("/generateOtp", otpH.Generate)
	r.Get("/verifyOtp", otpH.Verify)

	// ── Authenticated routes ─────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(authMw)

		r.Get("/validate", userH.Validate)
		r.Post("/save", entryH.Save)
		r.Post("/update/{id}", entryH.Update)
		r.Get("/delete/{id}", entryH.Delete)
		r.Get("/fetchAllLog", entryH.FetchAll)
		r.Get("/search", entryH.Search)
	})

	return r
}
