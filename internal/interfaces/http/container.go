package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tracklet-io/tracklet/internal/infrastructure/auth"
	"github.com/tracklet-io/tracklet/internal/infrastructure/config"
	"github.com/tracklet-io/tracklet/internal/infrastructure/database"
	"github.com/tracklet-io/tracklet/internal/infrastructure/ratelimit"
	"github.com/tracklet-io/tracklet/internal/interfaces/http/middleware"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

const loginRateLimitPrefix = "login"

// Container wires repositories, use cases, handlers and middleware around one
// database handle. The Redis client is optional; without it login is not
// rate limited.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	jwtSvc         *auth.JWTService
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
}

func NewContainer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		redis:  redisClient,
	}

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT)
	c.repos = newRepositories(db, log)
	c.ucs = newUseCases(c.repos, db, cfg, c.jwtSvc, log)
	c.hdlrs = newHandlers(c.ucs, &gormPinger{db: db}, log)

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log.Named("auth"))
	if redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisClient, loginRateLimitPrefix)
		c.rateLimiter = middleware.NewRateLimiter(limiter, cfg.RateLimit.Login, log.Named("ratelimit"))
	}

	return c
}

// Engine returns the gin engine. SetupRoutes must run first.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases what the container owns. The database handle belongs to
// the caller.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}

type gormPinger struct {
	db *gorm.DB
}

func (p *gormPinger) PingContext(ctx context.Context) error {
	return database.Ping(ctx, p.db)
}
