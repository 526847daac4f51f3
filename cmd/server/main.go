package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgo/hangar/internal/config"
	"github.com/forgo/hangar/internal/database"
	"github.com/forgo/hangar/internal/handler"
	"github.com/forgo/hangar/internal/middleware"
	"github.com/forgo/hangar/internal/repository"
	"github.com/forgo/hangar/internal/service"
	"github.com/forgo/hangar/internal/session"
	"github.com/forgo/hangar/pkg/jwks"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize token verification against the identity provider's JWKS.
	// The client ID doubles as the expected audience of ID tokens.
	verifier := jwks.NewVerifier(jwks.Config{
		JWKSURL:  cfg.Auth.JWKSURL(),
		Issuer:   cfg.Auth.Issuer(),
		Audience: cfg.Auth.ClientID,
		Refresh:  cfg.Auth.JWKSRefresh,
	})

	// Initialize session store for the browser login flow
	sessions := session.NewStore(session.Config{
		TTL:     cfg.Session.TTL,
		Cleanup: cfg.Session.Cleanup,
	})
	defer sessions.Stop()

	// Initialize repositories
	airplaneRepo := repository.NewAirplaneRepository(db)
	cargoRepo := repository.NewCargoRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	airplaneService := service.NewAirplaneService(airplaneRepo)
	cargoService := service.NewCargoService(cargoRepo)
	assignmentService := service.NewAssignmentService(airplaneRepo, cargoRepo, assignmentRepo)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(service.IdentityConfig{
		Domain:       cfg.Auth.Domain,
		ClientID:     cfg.Auth.ClientID,
		ClientSecret: cfg.Auth.ClientSecret,
		CallbackURL:  cfg.Auth.CallbackURL,
	}, verifier, userService)

	// Initialize handlers
	airplaneHandler := handler.NewAirplaneHandler(airplaneService)
	cargoHandler := handler.NewCargoHandler(cargoService, assignmentService)
	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService, sessions)
	healthHandler := handler.NewHealthHandler(db)

	authMiddleware := middleware.Auth(verifier)
	requireJSON := middleware.RequireJSON

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", healthHandler.Get)

	// Browser login flow
	mux.HandleFunc("GET /{$}", authHandler.Index)
	mux.HandleFunc("GET /login", authHandler.Login)
	mux.HandleFunc("GET /callback", authHandler.Callback)
	mux.HandleFunc("GET /user-info", authHandler.UserInfo)
	mux.HandleFunc("GET /logout", authHandler.Logout)

	// Airplane endpoints (bearer token required). DELETE has no response
	// body, so it skips the Accept check.
	mux.Handle("POST /airplanes", requireJSON(authMiddleware(http.HandlerFunc(airplaneHandler.Create))))
	mux.Handle("GET /airplanes", requireJSON(authMiddleware(http.HandlerFunc(airplaneHandler.List))))
	mux.Handle("GET /airplanes/{airplaneId}", requireJSON(authMiddleware(http.HandlerFunc(airplaneHandler.Get))))
	mux.Handle("PATCH /airplanes/{airplaneId}", requireJSON(authMiddleware(http.HandlerFunc(airplaneHandler.Patch))))
	mux.Handle("PUT /airplanes/{airplaneId}", requireJSON(authMiddleware(http.HandlerFunc(airplaneHandler.Put))))
	mux.Handle("DELETE /airplanes/{airplaneId}", authMiddleware(http.HandlerFunc(airplaneHandler.Delete)))

	// Cargo endpoints (unprotected)
	mux.Handle("POST /cargo", requireJSON(http.HandlerFunc(cargoHandler.Create)))
	mux.Handle("GET /cargo", requireJSON(http.HandlerFunc(cargoHandler.List)))
	mux.Handle("GET /cargo/{cargoId}", requireJSON(http.HandlerFunc(cargoHandler.Get)))
	mux.Handle("PATCH /cargo/{cargoId}", requireJSON(http.HandlerFunc(cargoHandler.Patch)))
	mux.Handle("PUT /cargo/{cargoId}", requireJSON(http.HandlerFunc(cargoHandler.Put)))
	mux.HandleFunc("DELETE /cargo/{cargoId}", cargoHandler.Delete)

	// Assignment endpoints: no body on success, no Accept check
	mux.HandleFunc("PUT /airplanes/{airplaneId}/cargo/{cargoId}", cargoHandler.Assign)
	mux.HandleFunc("DELETE /airplanes/{airplaneId}/cargo/{cargoId}", cargoHandler.Detach)

	// User endpoints: read-only, every other verb is rejected explicitly
	mux.HandleFunc("GET /users", userHandler.List)
	mux.HandleFunc("POST /users", userHandler.MethodNotAllowed)
	mux.HandleFunc("PUT /users", userHandler.MethodNotAllowed)
	mux.HandleFunc("PATCH /users", userHandler.MethodNotAllowed)
	mux.HandleFunc("DELETE /users", userHandler.MethodNotAllowed)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
