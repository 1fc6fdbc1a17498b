package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anbusan19/wealth-empire-sub001/internal/cache"
	"github.com/anbusan19/wealth-empire-sub001/internal/config"
	"github.com/anbusan19/wealth-empire-sub001/internal/repository"
	"github.com/anbusan19/wealth-empire-sub001/internal/service"
	"github.com/anbusan19/wealth-empire-sub001/internal/transport/rest"
)

// @title Wealth Empire Compliance API
// @version 1.0
// @description Startup compliance health check: questionnaire catalog, scoring, reports
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	registryCfg := config.DefaultRegistryConfig()
	if registryCfg.IsEnabled() {
		log.Println("Registry API: configured")
	} else {
		log.Println("Registry API: NOT SET (serving mock profiles)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := cfg.RedisAddr
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories
	assessmentRepo := repository.NewAssessmentRepo(db)

	// Initialize caches
	resultCache := cache.NewResultCache(rdb)
	registryCache := cache.NewRegistryCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(cfg)
	assessmentSvc := service.NewAssessmentService(assessmentRepo, resultCache)
	registrySvc := service.NewRegistryService(registryCache)

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		AssessmentService: assessmentSvc,
		RegistryService:   registrySvc,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/questions")
		log.Println("  POST /v1/assessments/score")
		log.Println("  GET  /v1/assessments/latest")
		log.Println("  GET  /v1/assessments")
		log.Println("  GET  /v1/registry/{cin}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
