package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/LostaMasta45/biolink-sub000/internal/config"
	"github.com/LostaMasta45/biolink-sub000/internal/handler"
	"github.com/LostaMasta45/biolink-sub000/internal/middleware"
	"github.com/LostaMasta45/biolink-sub000/internal/migration"
	"github.com/LostaMasta45/biolink-sub000/internal/repository"
	"github.com/LostaMasta45/biolink-sub000/internal/routes"
	"github.com/LostaMasta45/biolink-sub000/internal/service"
	pkgcache "github.com/LostaMasta45/biolink-sub000/pkg/cache"
	"github.com/LostaMasta45/biolink-sub000/pkg/jwt"
	pkglogger "github.com/LostaMasta45/biolink-sub000/pkg/logger"
	pkgredis "github.com/LostaMasta45/biolink-sub000/pkg/redis"
	pkgstorage "github.com/LostaMasta45/biolink-sub000/pkg/storage"
)

// @title           LostaMasta Backend API
// @version         1.0
// @description     Job posting agency backend: posting queue, clients, invoices, finance ledger and bio-link page
//
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.Init(env)
	pkglogger.GetLogger().Info().
		Str("env", env).
		Strs("dotenv_files", dotenvFiles).
		Msg("starting")

	cfg, err := config.Load(getConfigPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	config.LogResolved(cfg)

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	if sqlDB, dbErr := db.DB(); dbErr == nil {
		stats := sqlDB.Stats()
		middleware.SetDBConnectionsActive(float64(stats.OpenConnections))
	}

	// Redis is optional; without it the app runs uncached
	var cacheService pkgcache.Service
	if cfg.Redis.Enabled {
		redisClient, redisErr := pkgredis.NewClient(
			cfg.Redis.Host,
			cfg.Redis.Port,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Redis.PoolSize,
		)
		if redisErr != nil {
			pkglogger.GetLogger().Warn().Err(redisErr).Msg("redis unavailable, continuing without cache")
		} else {
			cacheService = pkgcache.NewService(redisClient)
		}
	}

	// S3-compatible storage for poster uploads
	var s3Client *pkgstorage.S3Client
	if cfg.Storage.Enabled && cfg.Storage.Bucket != "" {
		var s3Err error
		s3Client, s3Err = pkgstorage.NewS3Client(pkgstorage.S3Config{
			Endpoint:        cfg.Storage.Endpoint,
			Region:          cfg.Storage.Region,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			Bucket:          cfg.Storage.Bucket,
			CDNURL:          cfg.Storage.CDNURL,
			ForcePathStyle:  cfg.Storage.ForcePathStyle,
		})
		if s3Err != nil {
			pkglogger.GetLogger().Warn().Err(s3Err).Msg("storage init failed, uploads disabled")
			s3Client = nil
		}
	}

	var notifier service.Notifier
	if cfg.Notify.RelayURL != "" {
		notifier = service.NewRelayNotifier(cfg.Notify.RelayURL)
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn, cfg.JWT.RefreshIn)

	// Repositories
	postingRepo := repository.NewPostingRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	biolinkRepo := repository.NewBiolinkRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Services
	postingService := service.NewPostingService(postingRepo, catalogRepo, notifier, cacheService)
	clientService := service.NewClientService(postingRepo, cacheService, cfg.Tiers)
	invoiceService := service.NewInvoiceService(invoiceRepo, postingRepo, catalogRepo, ledgerRepo)
	ledgerService := service.NewLedgerService(ledgerRepo)
	biolinkService := service.NewBiolinkService(biolinkRepo, cacheService)
	authService := service.NewAuthService(adminRepo, jwtManager)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	postingHandler := handler.NewPostingHandler(postingService)
	catalogHandler := handler.NewCatalogHandler(catalogRepo, cacheService)
	clientHandler := handler.NewClientHandler(clientService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	ledgerHandler := handler.NewLedgerHandler(ledgerService)
	biolinkHandler := handler.NewBiolinkHandler(biolinkService)
	uploadHandler := handler.NewUploadHandler(s3Client)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	allowOrigins := cfg.CORS.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID"},
		MaxAge:           86400,
	}))

	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "lostamasta-backend",
			"time":    time.Now().Unix(),
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.Setup(
		router,
		authHandler,
		postingHandler,
		catalogHandler,
		clientHandler,
		invoiceHandler,
		ledgerHandler,
		biolinkHandler,
		uploadHandler,
		jwtManager,
	)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	pkglogger.GetLogger().Info().Str("addr", addr).Msg("listening")
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// initDB opens the MySQL connection and applies pool settings
func initDB(cfg *config.Config) (*gorm.DB, error) {
	logMode := gormlogger.Warn
	if cfg.IsDevelopment() {
		logMode = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.GetDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	return db, nil
}
