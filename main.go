package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpLayer "credit-engine/http"
	"credit-engine/repository"
	"credit-engine/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	planRepo := repository.NewPlanRepositoryMemory()

	var cache repository.CacheRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = repository.NewRedisCache(addr)
		log.Printf("Using Redis cache at %s", addr)
	} else {
		cache = repository.NewMockCache()
	}

	payoffService := service.NewPayoffService()
	strategyService := service.NewStrategyService(payoffService, planRepo, cache)
	creditScoreService := service.NewCreditScoreService()
	utilizationService := service.NewUtilizationService()

	payoffHandler := httpLayer.NewPayoffHandler(strategyService)
	freedomDateHandler := httpLayer.NewFreedomDateHandler(strategyService)
	creditScoreHandler := httpLayer.NewCreditScoreHandler(creditScoreService)
	utilizationHandler := httpLayer.NewUtilizationHandler(utilizationService)

	rateLimiter := httpLayer.NewRateLimiter(5, time.Minute)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/credit/score",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(creditScoreHandler.EstimateCreditScore),
		),
	)

	mux.Handle(
		"/credit/utilization",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(utilizationHandler.CalculateUtilization),
		),
	)

	mux.Handle(
		"/debt/payoff-plan",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(payoffHandler.CalculatePayoffPlan),
		),
	)

	mux.Handle(
		"/debt/freedom-date",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(freedomDateHandler.GetDebtFreedomDate),
		),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 API corriendo en http://localhost:%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
