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
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"interviewlens/internal/cache"
	"interviewlens/internal/config"
	"interviewlens/internal/insight"
	"interviewlens/internal/repository"
	"interviewlens/internal/service"
	"interviewlens/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg := config.Load()

	followupCfg := config.DefaultFollowupConfig()
	log.Printf("Follow-up service:")
	if followupCfg.IsEnabled() {
		log.Printf("  Endpoint: %s", followupCfg.Endpoint)
		log.Printf("  Timeout:  %dms", followupCfg.TimeoutMS)
	} else {
		log.Println("  Endpoint: NOT SET (template follow-ups only)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories
	interviewRepo := repository.NewInterviewRepo(db)
	reportRepo := repository.NewReportRepo(db)

	// Initialize caches
	corpusCache := cache.NewCorpusCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	followupClient := service.NewFollowupClient(followupCfg)
	engine := insight.NewEngine(followupClient)
	interviewSvc := service.NewInterviewService(interviewRepo, reportRepo, corpusCache)
	reportSvc := service.NewReportService(interviewRepo, reportRepo, corpusCache)
	insightSvc := service.NewInsightService(interviewRepo, reportRepo, corpusCache, engine)

	// Create router with container
	container := &rest.Container{
		AuthService:      authSvc,
		InterviewService: interviewSvc,
		ReportService:    reportSvc,
		InsightService:   insightSvc,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST/GET /v1/interviews")
		log.Println("  GET/PATCH/DELETE /v1/interviews/{interviewId}")
		log.Println("  PUT/GET /v1/interviews/{interviewId}/report")
		log.Println("  GET  /v1/interviews/{interviewId}/qa/{qaId}/insight")

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
