package web

import (
	"context"
	"net/http"
	"time"

	"neonbank/config"
	"neonbank/domain/interfaces"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	log "github.com/sirupsen/logrus"
)

// Server is the HTTP front end over the bank and casino services
type Server struct {
	accountService interfaces.AccountService
	ledger         interfaces.LedgerService
	casino         interfaces.CasinoService
	admin          interfaces.AdminService

	jwtSecret []byte
	tokenTTL  time.Duration

	httpServer *http.Server
}

// NewServer wires the services into a configured HTTP server
func NewServer(
	cfg *config.Config,
	accountService interfaces.AccountService,
	ledger interfaces.LedgerService,
	casino interfaces.CasinoService,
	admin interfaces.AdminService,
) *Server {
	s := &Server{
		accountService: accountService,
		ledger:         ledger,
		casino:         casino,
		admin:          admin,
		jwtSecret:      []byte(cfg.JWTSecret),
		tokenTTL:       cfg.AccessTokenDuration,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	r.Post("/auth/register", s.handleRegister)
	r.Post("/auth/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)

		r.Get("/accounts/me", s.handleGetMe)
		r.Post("/transfers", s.handleTransfer)
		r.Get("/transactions", s.handleHistory)
		r.Get("/transactions/search", s.handleSearchTransactions)

		r.Route("/casino", func(r chi.Router) {
			r.Get("/games", s.handleListGames)
			r.Post("/glitch-grid/spin", s.handleGlitchGridSpin)
			r.Post("/starlight/spin", s.handleStarlightSpin)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(s.adminMiddleware)

			r.Get("/accounts/{accountNumber}", s.handleGetAccount)
			r.Post("/adjustments", s.handleAdjustBalance)
			r.Get("/games", s.handleListGameConfigs)
			r.Patch("/games/{gameName}", s.handleUpdateGameConfig)
			r.Get("/audit-logs", s.handleListAuditLogs)
			r.Get("/transactions", s.handleListAllTransactions)
		})
	})

	return r
}

// Start begins serving; it blocks until the server stops
func (s *Server) Start() error {
	log.WithField("addr", s.httpServer.Addr).Info("starting HTTP server")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the routed handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
