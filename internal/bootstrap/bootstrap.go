package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/emre/postova/internal/app/controllers"
	appMigrations "github.com/emre/postova/internal/app/migrations"
	appRepos "github.com/emre/postova/internal/app/repositories"
	appRoutes "github.com/emre/postova/internal/app/routes"
	appServices "github.com/emre/postova/internal/app/services"
	"github.com/emre/postova/internal/config"
	"github.com/emre/postova/internal/db"
	appMiddleware "github.com/emre/postova/internal/middleware"
	pkgAuth "github.com/emre/postova/internal/pkg/auth"
	"github.com/emre/postova/internal/pkg/cache"
	"github.com/emre/postova/internal/pkg/events"
	"github.com/emre/postova/internal/pkg/filestorage"
	"github.com/emre/postova/internal/pkg/helpers"
	"github.com/emre/postova/internal/pkg/logger"
	"github.com/emre/postova/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	FeedService       appServices.FeedService
	FollowService     appServices.FollowService
	PostService       appServices.PostService
	CommentService    appServices.CommentService
	GroupService      appServices.GroupService
	AuthController    *appControllers.AuthController
	FeedController    *appControllers.FeedController
	PostController    *appControllers.PostController
	CommentController *appControllers.CommentController
	GroupController   *appControllers.GroupController
	FollowController  *appControllers.FollowController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	FileStorage       *filestorage.LocalStorage
	PageCache         cache.PageCache
	Publisher         *events.Publisher
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	migrationsDir := cfg.Database.MigrationsPath
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(ctx, dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// setupPageCache picks the cache backend: redis when configured, otherwise
// the in-process cache.
func setupPageCache(cfg *config.Config, lgr zerolog.Logger) cache.PageCache {
	if cfg.Cache.RedisAddr == "" {
		lgr.Info().Msg("Using in-process feed cache")
		return cache.NewMemoryCache()
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr})
	lgr.Info().Str("addr", cfg.Cache.RedisAddr).Msg("Using redis feed cache")
	return cache.NewRedisCache(client)
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	baseURL := cfg.Server.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Server.Port
	}
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.PageCache = setupPageCache(cfg, lgr)

	deps.Publisher, err = events.Connect(cfg.NATS.URL)
	if err != nil {
		// Events are best-effort; run without them rather than refusing to start
		lgr.Warn().Err(err).Msg("Failed to connect to NATS, events disabled")
		deps.Publisher = nil
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.FeedService = appServices.NewFeedService(
		deps.Repos.PostRepository,
		deps.Repos.GroupRepository,
		deps.Repos.UserRepository,
		deps.Repos.FollowRepository,
		cfg.Pagination.PageSize,
		lgr,
	)
	deps.FollowService = appServices.NewFollowService(deps.Repos.FollowRepository, deps.Repos.UserRepository, lgr)
	deps.PostService = appServices.NewPostService(
		deps.Repos.PostRepository,
		deps.Repos.GroupRepository,
		deps.Repos.CommentRepository,
		deps.Repos.FileRepository,
		deps.FileStorage,
		deps.Publisher,
		lgr,
	)
	deps.CommentService = appServices.NewCommentService(deps.Repos.CommentRepository, deps.Repos.PostRepository, deps.Repos.UserRepository)
	deps.GroupService = appServices.NewGroupService(deps.Repos.GroupRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.FeedController = appControllers.NewFeedController(deps.FeedService, deps.PageCache, cfg.CacheTTL())
	deps.PostController = appControllers.NewPostController(deps.PostService)
	deps.CommentController = appControllers.NewCommentController(deps.CommentService)
	deps.GroupController = appControllers.NewGroupController(deps.GroupService)
	deps.FollowController = appControllers.NewFollowController(deps.FollowService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.FeedController,
		deps.PostController,
		deps.CommentController,
		deps.GroupController,
		deps.FollowController,
		deps.AuthMiddleware,
		cfg.Server.StoragePath,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
