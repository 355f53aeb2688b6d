package container

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"cms-backend/internal/config"
	infraCache "cms-backend/internal/infrastructure/cache"
	"cms-backend/internal/infrastructure/database"
	"cms-backend/migrations"
	"cms-backend/pkg/cache"

	"cms-backend/internal/domains/author"
	authorHandler "cms-backend/internal/domains/author/handler"
	authorRepo "cms-backend/internal/domains/author/repository"
	authorService "cms-backend/internal/domains/author/service"

	"cms-backend/internal/domains/post"
	postHandler "cms-backend/internal/domains/post/handler"
	postRepo "cms-backend/internal/domains/post/repository"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup; construction order is config →
// infrastructure → repositories → services → handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	AuthorRepo author.Repository
	PostReader post.Reader

	AuthorService author.Service

	AuthorHandler *authorHandler.AuthorHandler
	PostHandler   *postHandler.PostHandler

	closers []func() error
}

// NewContainer initializes the full dependency graph, running database
// migrations along the way. Any failure aborts startup.
func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db, err := database.Connect(ctx, config.LoadDatabaseConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db
	c.closers = append(c.closers, db.Close)

	if err := migrations.Migrate(db.DB); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(ctx); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Cache = redisCache
	c.closers = append(c.closers, redisCache.Close)

	c.AuthorRepo = authorRepo.NewPostgresRepository(db.DB, c.Cache)
	c.PostReader = postRepo.NewPostgresReader(db.DB)

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.PostReader)

	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.PostHandler = postHandler.NewPostHandler(c.PostReader)

	log.Info().Str("environment", cfg.App.Environment).Msg("container initialized")

	return c, nil
}

// Cleanup releases infrastructure resources in reverse construction order.
func (c *Container) Cleanup() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			log.Error().Err(err).Msg("cleanup error")
		}
	}
	c.closers = nil
}
