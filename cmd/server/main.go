package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"creator-kita.backend/internal/config"
	"creator-kita.backend/internal/infrastructure/jobs"
	"creator-kita.backend/internal/infrastructure/repositories"
	"creator-kita.backend/internal/infrastructure/storage"
	"creator-kita.backend/internal/interfaces/http/handlers"
	"creator-kita.backend/internal/interfaces/http/middleware"
	"creator-kita.backend/internal/usecases"
	"creator-kita.backend/pkg/crypto"
	"creator-kita.backend/pkg/jwt"
	"creator-kita.backend/pkg/logger"
	"creator-kita.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis. Sessions and idempotency degrade gracefully
	// without it, so a failure is logged but not fatal.
	redisAvailable := true
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis, sessions disabled", zap.Error(err))
		redisAvailable = false
	}

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	userTypeRepo := repositories.NewUserTypeRepository(db)
	creatorRepo := repositories.NewCreatorRepository(db)
	brandRepo := repositories.NewBrandRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	kycRepo := repositories.NewKYCDocumentRepository(db)

	// Initialize Session Store
	var sessionStore *redis.SessionStore
	if redisAvailable {
		sessionStore, err = newSessionStore(cfg.Security.SessionEncryptionKey)
		if err != nil {
			return fmt.Errorf("failed to initialize session store: %w", err)
		}
	}

	// Initialize document number encryption and file storage
	secretBox, err := crypto.NewSecretBox(cfg.Security.DocumentEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize document encryption: %w", err)
	}
	fileStore, err := storage.NewLocalFileStore(cfg.Storage.UploadDir)
	if err != nil {
		return fmt.Errorf("failed to initialize file storage: %w", err)
	}

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, userTypeRepo, roleRepo, jwtService, sessionStore)
	creatorUsecase := usecases.NewCreatorUsecase(creatorRepo, userRepo, userTypeRepo, authUsecase)
	brandUsecase := usecases.NewBrandUsecase(brandRepo, userRepo, userTypeRepo, authUsecase)
	roleUsecase := usecases.NewRoleUsecase(roleRepo, userRepo)
	kycUsecase := usecases.NewKYCUsecase(kycRepo, fileStore, secretBox, cfg.KYC.DocumentTTL)
	userUsecase := usecases.NewUserUsecase(userRepo, userTypeRepo, creatorRepo, brandRepo, kycRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	creatorHandler := handlers.NewCreatorHandler(creatorUsecase)
	brandHandler := handlers.NewBrandHandler(brandUsecase)
	roleHandler := handlers.NewRoleHandler(roleUsecase)
	kycHandler := handlers.NewKYCHandler(kycUsecase)
	adminHandler := handlers.NewAdminHandler(userUsecase)

	// Auth middleware resolves the caller's permissions on every request
	// so role changes take effect immediately.
	authMiddleware := middleware.AuthMiddleware(jwtService, roleUsecase)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewKYCExpiryJob(kycRepo, cfg.KYC.ExpirySweepEvery)
	go expiryJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:    authHandler,
		creatorHandler: creatorHandler,
		brandHandler:   brandHandler,
		roleHandler:    roleHandler,
		kycHandler:     kycHandler,
		adminHandler:   adminHandler,
		authMiddleware: authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		expiryJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 CreatorKita Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
