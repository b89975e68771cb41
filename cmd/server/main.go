package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/trvan/simple-portfolio/pkg/simpleportfolio"
	"github.com/trvan/simple-portfolio/pkg/simpleportfolio/api"
	"github.com/trvan/simple-portfolio/pkg/simpleportfolio/config"
)

func main() {
	serverConfig := mustLoadServerConfig()

	svc, err := serverConfig.BuildService()
	if err != nil {
		slog.Error("Failed to build service", "err", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", serverConfig.Port),
		Handler: buildRouter(svc, serverConfig),
	}

	go func() {
		slog.Info("Portfolio server starting",
			"port", serverConfig.Port,
			"environment", serverConfig.Environment,
			"default_storage", serverConfig.DefaultStorageBackend,
			"storage_backends", len(serverConfig.StorageBackends))

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "err", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "err", err)
		os.Exit(1)
	}

	slog.Info("Server exiting")
}

func buildRouter(svc simpleportfolio.Service, serverConfig *config.ServerConfig) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS for development
	if serverConfig.Environment == "development" {
		r.Use(corsMiddleware)
	}

	r.Get("/health", handleHealth(serverConfig))

	uploadHandler := api.NewUploadHandler(svc)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/intro", api.NewIntroHandler(svc).Routes())
		r.Mount("/content", api.NewContentHandler(svc).Routes())
		r.Mount("/other", api.NewOtherHandler(svc).Routes())
		r.Mount("/sections", api.NewSectionHandler(svc).Routes())
		r.Mount("/uploads", uploadHandler.Routes())
		r.Mount("/media", uploadHandler.MediaRoutes())
	})

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func handleHealth(serverConfig *config.ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"healthy","environment":%q,"default_storage":%q}`,
			serverConfig.Environment, serverConfig.DefaultStorageBackend)
	}
}
