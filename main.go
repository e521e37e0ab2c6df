package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"car-advisor/internal/config"
	Iservices "car-advisor/internal/domain/interfaces/services"
	"car-advisor/internal/infra/catalog"
	"car-advisor/internal/infra/graph"
	"car-advisor/internal/infra/handlers"
	"car-advisor/internal/infra/logger"
	"car-advisor/internal/infra/provider"
	"car-advisor/internal/infra/repository"
	"car-advisor/internal/infra/routes"
	"car-advisor/internal/infra/services"
	"car-advisor/internal/middleware"

	"github.com/gorilla/mux"
)

func main() {
	config.LoadEnv()

	ctx := context.Background()
	log := logger.NewLogger(ctx, true)

	interviewGraph := graph.NewInterviewGraph()
	if err := interviewGraph.Validate(log); err != nil {
		log.Fatal(fmt.Sprintf("Question graph validation failed: %v", err))
	}

	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware(log))

	sessionRepo := repository.NewInMemorySessionRepository()

	httpClient := &http.Client{Timeout: 30 * time.Second}
	speechProvider := provider.NewElevenLabsProvider(log, httpClient)

	cacheDir := config.GetEnvOrDefault("AUDIO_CACHE_DIR", "audio_cache")
	prewarmDelay := time.Duration(envInt("TTS_PREWARM_DELAY_SECONDS", 6)) * time.Second
	var speechSvc Iservices.ISpeechService = services.NewSpeechCacheService(log, speechProvider, cacheDir, 20*time.Second, prewarmDelay)

	interpreter := services.NewInterpreter()
	var flowSvc Iservices.IFlowService = services.NewFlowEngine(log, interviewGraph, sessionRepo, interpreter, speechSvc)
	var tokenSvc Iservices.ITokenService = services.NewTokenService(log, config.GetEnvOrDefault("JWT_SECRET", "dev-secret"))
	var financeSvc Iservices.IFinanceService = services.NewFinanceCalculator()

	authHandlers := handlers.NewAuthHandlers(log, tokenSvc)
	flowHandlers := handlers.NewFlowHandlers(log, flowSvc, speechSvc, interviewGraph)
	catalogHandlers := handlers.NewCatalogHandlers(log, catalog.NewFavoritesStore())
	financeHandlers := handlers.NewFinanceHandlers(log, flowSvc, financeSvc)

	routes := routes.NewRoutes(
		router,
		authHandlers,
		flowHandlers,
		catalogHandlers,
		financeHandlers,
		tokenSvc,
	)

	routes.Init()

	if config.GetEnvOrDefault("TTS_PREWARM_ON_BOOT", "false") == "true" {
		go func() {
			summary := speechSvc.Prewarm(ctx, interviewGraph.Nodes())
			log.Info(fmt.Sprintf("Audio prewarm finished: %d generated, %d skipped, %d failed",
				summary.Generated, summary.Skipped, summary.Failed))
		}()
	}

	port := config.GetEnvOrDefault("PORT", "5174")
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: router,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	go func() {
		log.Info(fmt.Sprintf("Server is running on port %s", port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(fmt.Sprintf("Error running HTTP server: %s", err))
			os.Exit(1)
		}
	}()

	<-stop
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(fmt.Sprintf("Server forced to shutdown: %v", err))
	} else {
		log.Info("Server stopped gracefully.")
	}
}

func envInt(key string, fallback int) int {
	value, err := strconv.Atoi(config.GetEnvOrDefault(key, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return value
}
