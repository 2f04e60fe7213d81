package main

import (
	"context"
	"log"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fadilmartias/rozgar/internal/config"
	"github.com/fadilmartias/rozgar/internal/domain/fiber/handler"
	"github.com/fadilmartias/rozgar/internal/middleware"
	"github.com/fadilmartias/rozgar/internal/model"
	"github.com/fadilmartias/rozgar/internal/repository"
	"github.com/fadilmartias/rozgar/internal/service"
	"github.com/fadilmartias/rozgar/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Could not load .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName:      appConfig.Name,
		ErrorHandler: handler.ErrorHandler,
		BodyLimit:    6 * 1024 * 1024,
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(100, 1*time.Minute))

	db := ConnectDB()

	testRepo := repository.NewTestRepository(db)
	resultRepo := repository.NewTestResultRepository(db)
	taskRepo := repository.NewQualificationRepository(db)
	interviewRepo := repository.NewInterviewRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	jobRepo := repository.NewJobRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Question generation providers, tried in order
	policy := service.NewRetryPolicy(config.LoadAIConfig())
	var generators []service.QuestionGenerator
	var providers []string
	var circuits []handler.CircuitReporter
	var embedder service.Embedder

	if openAICfg := config.LoadOpenAIConfig(); openAICfg.Enabled() {
		openAI := service.NewOpenAIService(openAICfg, policy)
		generators = append(generators, openAI)
		providers = append(providers, openAI.Name())
	}
	if geminiCfg := config.LoadGeminiConfig(); geminiCfg.Enabled() {
		gemini, err := service.NewGeminiService(ctx, geminiCfg, policy)
		if err != nil {
			log.Printf("Gemini disabled: %v", err)
		} else {
			generators = append(generators, gemini)
			providers = append(providers, gemini.Name())
			circuits = append(circuits, gemini)
			embedder = gemini
		}
	}
	if len(generators) == 0 {
		log.Println("No AI provider configured, question generation will serve the fallback set")
	}

	var cache service.CounterCache = service.NoopCounterCache{}
	if redisCfg := config.LoadRedisConfig(); redisCfg.Enabled() {
		redisCache := service.NewRedisCounterCache(redisCfg)
		if err := redisCache.Ping(ctx); err != nil {
			log.Printf("Redis unavailable, dashboard counts are not cached: %v", err)
			redisCache.Close()
		} else {
			defer redisCache.Close()
			cache = redisCache
		}
	}

	interviewUC := usecase.NewInterviewUsecase(interviewRepo, cache)

	var qualificationUC *usecase.QualificationUsecase
	process := func(ctx context.Context, taskID string) error {
		return qualificationUC.Process(ctx, taskID)
	}
	var dispatcher service.Dispatcher = service.NewInProcessDispatcher(process)
	if rabbitCfg := config.LoadRabbitConfig(); rabbitCfg.Enabled() {
		rabbit, err := service.NewRabbitDispatcher(rabbitCfg)
		if err != nil {
			log.Printf("RabbitMQ unavailable, qualifying in process: %v", err)
		} else {
			defer rabbit.Close()
			if err := rabbit.Consume(ctx, process); err != nil {
				log.Fatal(err)
			}
			dispatcher = rabbit
		}
	}
	qualificationUC = usecase.NewQualificationUsecase(taskRepo, interviewUC, dispatcher)

	tokens := service.NewTokenService(config.LoadAuthConfig())
	var google *service.GoogleOAuthService
	if authCfg := config.LoadAuthConfig(); authCfg.GoogleEnabled() {
		google = service.NewGoogleOAuthService(authCfg)
	}

	testUC := usecase.NewTestUsecase(testRepo, resultRepo, qualificationUC, cache, generators...)
	jobUC := usecase.NewJobUsecase(jobRepo, embedder)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, cache)
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	dashboardUC := usecase.NewDashboardUsecase(testRepo, resultRepo, interviewRepo, applicationRepo, cache)

	handler.NewHealthHandler(providers, circuits...).RegisterRoutes(app)
	handler.NewAuthHandler(authUC, tokens, google, appConfig.FrontendURL).RegisterRoutes(app)
	handler.NewTestHandler(testUC).RegisterRoutes(app)
	handler.NewInterviewHandler(interviewUC).RegisterRoutes(app)
	handler.NewJobHandler(jobUC).RegisterRoutes(app)
	handler.NewApplicationHandler(applicationUC, "./uploads/resumes").RegisterRoutes(app)
	handler.NewDashboardHandler(dashboardUC).RegisterRoutes(app)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				log.Printf("Active goroutines: %d", runtime.NumGoroutine())
			}
		}
	}()

	go func() {
		<-ctx.Done()
		log.Println("Shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if !appConfig.IsProduction() {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Fatal("enable pgvector: ", err)
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
