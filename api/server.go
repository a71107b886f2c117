package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rpupo63/nexusconsult-backend/attachments"
	"github.com/rpupo63/nexusconsult-backend/config"
	"github.com/rpupo63/nexusconsult-backend/database"
	"github.com/rpupo63/nexusconsult-backend/errs"
	"github.com/rpupo63/nexusconsult-backend/ratelimit"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(cfg config.Config, database database.Database, limiter ratelimit.Limiter, uploader attachments.Uploader) (Server, error) {
	address := fmt.Sprintf("0.0.0.0:%s", cfg.Port)

	trusted, err := NewTrustedProxies(cfg.TrustedProxyCIDRs)
	if err != nil {
		return Server{}, errs.NewConfigError("TRUSTED_PROXY_CIDRS", err)
	}

	// Capture startup time
	startupTime := time.Now()

	router := newRouter(database,
		withConfig(cfg),
		withStartupTime(startupTime),
		withLimiter(limiter),
		withUploader(uploader),
		withTrustedProxies(trusted),
	)

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      config.Config
	startupTime time.Time
	limiter     ratelimit.Limiter
	uploader    attachments.Uploader
	trusted     *TrustedProxies
}

func withConfig(c config.Config) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func withLimiter(l ratelimit.Limiter) func(*router) {
	return func(r *router) {
		r.limiter = l
	}
}

func withUploader(u attachments.Uploader) func(*router) {
	return func(r *router) {
		r.uploader = u
	}
}

func withTrustedProxies(t *TrustedProxies) func(*router) {
	return func(r *router) {
		r.trusted = t
	}
}

func newRouter(database database.Database, opts ...func(*router)) *chi.Mux {
	router := router{
		limiter:  ratelimit.Unlimited{},
		uploader: attachments.MockUploader{},
	}
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(clientIPMiddleware(router.trusted))

	handlers := initializeHandlers(database, router)

	acceptedOrigins := router.config.AcceptedOrigins
	if len(acceptedOrigins) == 0 {
		acceptedOrigins = []string{"*"}
	}
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins))
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: !allowsAnyOrigin(acceptedOrigins),
		MaxAge:           300,
	}))

	setupSiteRoutes(chiRouter, handlers, newRateLimitMiddleware(router.limiter))

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
