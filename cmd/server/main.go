package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"interviewedge/internal/config"
	"interviewedge/internal/handlers"
	"interviewedge/internal/interview"
	"interviewedge/internal/jobs"
	"interviewedge/internal/llm"
	_ "interviewedge/internal/llm/gemini"
	_ "interviewedge/internal/llm/openrouter"
	appmw "interviewedge/internal/middleware"
	"interviewedge/internal/prompts"
	mongorepo "interviewedge/internal/repositories/mongo"
	"interviewedge/internal/resume"
	"interviewedge/internal/routers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func registerRoutes(router *chi.Mux, authHandler *handlers.AuthHandler, interviewHandler *handlers.InterviewHandler, healthHandler *handlers.HealthHandler, jwtSecret string) {
	routers.HealthRoutes(router, healthHandler)
	routers.AuthRoutes(router, authHandler, jwtSecret)
	routers.InterviewRoutes(router, interviewHandler, jwtSecret)
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("provider", cfg.Provider))

	// prompt manager
	promptManager, err := prompts.NewManager()
	if err != nil {
		logger.Fatal("Failed to initialize prompt manager", zap.Error(err))
	}

	// AI provider based on configuration
	aiProvider, err := llm.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}

	// MongoDB repositories
	mongoClient, err := mongorepo.NewClient(context.Background(), cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	userRepo, err := mongorepo.NewUserRepo(mongoClient)
	if err != nil {
		logger.Fatal("Failed to initialize user repository", zap.Error(err))
	}
	interviewRepo, err := mongorepo.NewInterviewRepo(mongoClient)
	if err != nil {
		logger.Fatal("Failed to initialize interview repository", zap.Error(err))
	}

	// interview services
	extractor := resume.NewExtractor()
	analyzer := resume.NewAnalyzer(aiProvider, promptManager, logger)
	generator := interview.NewGenerator(aiProvider, promptManager, userRepo, interviewRepo, logger, cfg.QuestionCost, cfg.QuestionCount)
	evaluator := interview.NewEvaluator(aiProvider, promptManager, interviewRepo, logger)
	finisher := interview.NewFinisher(interviewRepo)

	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret, cfg.SignupCredits, logger)
	interviewHandler := handlers.NewInterviewHandler(extractor, analyzer, generator, evaluator, finisher, userRepo, interviewRepo, cfg.UploadDir, logger)
	healthHandler := handlers.NewHealthHandler(aiProvider, func(ctx context.Context) error {
		db, err := mongoClient.DB()
		if err != nil {
			return err
		}
		return db.Client().Ping(ctx, nil)
	})

	// stale-upload sweeper
	sweeper := jobs.NewUploadSweeperJob(&jobs.SweeperConfig{
		Schedule:  "@every 30m",
		UploadDir: cfg.UploadDir,
		TTL:       cfg.UploadTTL,
	}, logger)
	if err := sweeper.Start(); err != nil {
		logger.Error("Failed to start upload sweeper", zap.Error(err))
	}

	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, middleware.Timeout(90*time.Second))
	router.Use(appmw.Metrics)

	registerRoutes(router, authHandler, interviewHandler, healthHandler, cfg.JWTSecret)

	serverAddr := ":" + cfg.Port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starting server in a goroutine
	go func() {
		logger.Info("InterviewEdge API starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("InterviewEdge API shutting down...")

	sweeper.Stop()

	// graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Error("failed to disconnect from MongoDB", zap.Error(err))
	}

	logger.Info("InterviewEdge API exited")
}
