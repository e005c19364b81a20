package di

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"user-service/cmd/api/infrastructure"
	"user-service/internal/adapter/cache"
	ginhandler "user-service/internal/adapter/gin/handler"
	ginmiddleware "user-service/internal/adapter/gin/middleware"
	"user-service/internal/adapter/repository/cached"
	"user-service/internal/adapter/repository/memory"
	"user-service/internal/adapter/repository/postgres"
	"user-service/internal/config"
	"user-service/internal/usecase/user"
	redisclient "user-service/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client
	UserService user.Service
	RateLimiter *ginmiddleware.RateLimiter
	GinHandler  *ginhandler.UserHandler
}

// NewContainer creates and initializes all application dependencies.
//
// The service degrades instead of refusing to start: an unreachable
// database falls back to the in-memory store, an unreachable Redis
// disables the cache and the rate limiter.
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Initialize the persistent store
	var repo user.Repository
	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		l.Warn("database unavailable, using in-memory store", zap.Error(err))
		db = nil
		repo = memory.NewUserRepoMem(l)
	} else {
		repo = postgres.NewUserRepoPG(db, l)
	}

	// Initialize Redis client
	var rdb *redisclient.Client
	if cfg.Redis.Enabled {
		rdb, err = infrastructure.NewRedisClient(cfg, l)
		if err != nil {
			l.Warn("redis unavailable, cache and rate limiting disabled", zap.Error(err))
			rdb = nil
		}
	}

	// Wrap the store with the cache layer when Redis is up
	if rdb != nil {
		userCache := cache.NewRedisUserCache(
			rdb.Client,
			time.Duration(cfg.Redis.CacheTTL)*time.Second,
			l,
		)
		repo = cached.NewCachedUserRepository(repo, userCache, l)
	}

	// Initialize the user service
	userSvc := user.NewUserService(repo, l)

	// Initialize rate limiter
	var rateLimiter *ginmiddleware.RateLimiter
	if rdb != nil && cfg.RateLimit.Enabled {
		rateLimiter = ginmiddleware.NewRateLimiter(
			rdb.Client,
			ginmiddleware.RateLimiterConfig{
				RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
				BurstCapacity:     cfg.RateLimit.BurstCapacity,
				Enabled:           cfg.RateLimit.Enabled,
			},
			l,
		)
	}

	// Initialize Gin handler
	ginHandler := ginhandler.NewUserHandler(userSvc, l)

	return &Container{
		Config:      cfg,
		Logger:      l,
		DB:          db,
		RedisClient: rdb,
		UserService: userSvc,
		RateLimiter: rateLimiter,
		GinHandler:  ginHandler,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	// Close database connection
	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
