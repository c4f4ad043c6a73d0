package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	dbadapter "blogfeed/internal/adapters/database"
	"blogfeed/internal/adapters/httpapi"
	memoryadapter "blogfeed/internal/adapters/memory"
	redisadapter "blogfeed/internal/adapters/redis"
	"blogfeed/internal/config"
	commentapp "blogfeed/internal/core/comment/service"
	feedapp "blogfeed/internal/core/feed/service"
	followerapp "blogfeed/internal/core/follower/service"
	groupapp "blogfeed/internal/core/group/service"
	pagecacheapp "blogfeed/internal/core/pagecache/service"
	postapp "blogfeed/internal/core/post/service"
	userapp "blogfeed/internal/core/user/service"
	pagecachePort "blogfeed/internal/ports/pagecache"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	indexCacheName  = "index_page"
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.InitLogger(os.Getenv("APP_ENV"))
		config.Logger.Fatal("Invalid configuration", zap.Error(err))
	}
	config.InitLogger(cfg.Env)
	defer func() { _ = config.Logger.Sync() }()
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.OpenDB(cfg)
	if err != nil {
		config.Logger.Fatal("Database unavailable", zap.Error(err))
	}
	if err := dbadapter.AutoMigrate(db); err != nil {
		config.Logger.Fatal("Error during migrations", zap.Error(err))
	}
	config.Logger.Info("Database migrations completed")

	redisClient, err := config.OpenRedis(ctx, cfg)
	if err != nil {
		config.Logger.Fatal("Redis unavailable", zap.Error(err))
	}
	defer closeResources(config.Logger, db, redisClient)

	userRepo := dbadapter.NewUserRepositoryDatabase(db)
	groupRepo := dbadapter.NewGroupRepositoryDatabase(db)
	postRepo := dbadapter.NewPostRepositoryDatabase(db)
	commentRepo := dbadapter.NewCommentRepositoryDatabase(db)
	followerRepo := dbadapter.NewFollowerRepositoryDatabase(db)

	userSvc := userapp.NewUserService(userRepo, []byte(cfg.JWTSecret))
	groupSvc := groupapp.NewGroupService(groupRepo)
	postSvc := postapp.NewPostService(postRepo, groupRepo)
	commentSvc := commentapp.NewCommentService(commentRepo, postRepo)
	followerSvc := followerapp.NewFollowerService(followerRepo)
	feedSvc := feedapp.NewFeedService(postRepo, groupRepo, userRepo, followerSvc, cfg.AmountPosts)
	indexCache := pagecacheapp.NewPageCacheService(pageCacheStore(redisClient), indexCacheName, cfg.IndexCacheTTL)

	for _, seed := range cfg.GroupSeeds() {
		if _, err := groupSvc.EnsureGroup(ctx, seed.Slug, seed.Title); err != nil {
			config.Logger.Fatal("Seeding group failed", zap.String("slug", seed.Slug), zap.Error(err))
		}
	}

	renderer, err := httpapi.NewRenderer()
	if err != nil {
		config.Logger.Fatal("Templates failed to load", zap.Error(err))
	}
	r := httpapi.SetupRoutes(httpapi.UseCases{
		Users:     userSvc,
		Posts:     postSvc,
		Comments:  commentSvc,
		Groups:    groupSvc,
		Followers: followerSvc,
		Feeds:     feedSvc,
		IndexPage: indexCache,
	}, renderer)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		config.Logger.Info("App is running", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.Error("Server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	config.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}

func pageCacheStore(client *redis.Client) pagecachePort.Store {
	if client == nil {
		config.Logger.Info("REDIS_ADDR not set, using in-process page cache")
		return memoryadapter.NewPageCacheRepositoryMemory()
	}
	return redisadapter.NewPageCacheRepositoryRedis(client)
}

// closeResources closes the Redis client and the SQL pool.
func closeResources(logger *zap.Logger, db *gorm.DB, redisClient *redis.Client) {
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting raw DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", zap.Error(err))
	}
}
