package db

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/windoze95/cookiemice-api/internal/config"
	"github.com/windoze95/cookiemice-api/internal/db/migrations"
	"github.com/windoze95/cookiemice-api/internal/logger"
	"github.com/windoze95/cookiemice-api/internal/models"
	"github.com/windoze95/cookiemice-api/internal/repository"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DefaultMongoDatabase is used when a MongoDB URL names no database.
const DefaultMongoDatabase = "cookiemice"

const (
	retryInterval = 5 * time.Second
	retryTimeout  = 1 * time.Minute
)

// Backend identifies the storage engine behind a DATABASE_URL.
type Backend string

// Supported backends.
const (
	BackendMongo    Backend = "mongodb"
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
)

// Store is an open database and the recipe repository bound to it.
type Store struct {
	Backend Backend
	Recipes repository.RecipeRepo
	close   func(ctx context.Context) error
}

// Close releases the underlying connection.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// BackendFor picks the storage engine from the scheme of databaseURL.
func BackendFor(databaseURL string) (Backend, error) {
	switch {
	case strings.HasPrefix(databaseURL, "mongodb://"), strings.HasPrefix(databaseURL, "mongodb+srv://"):
		return BackendMongo, nil
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return BackendPostgres, nil
	case strings.HasPrefix(databaseURL, "sqlite://"), strings.HasPrefix(databaseURL, "file:"):
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("unsupported DATABASE_URL scheme in %q", redact(databaseURL))
	}
}

// New opens the database named by DATABASE_URL and migrates the recipe schema.
func New(ctx context.Context, cfg *config.Config) (*Store, error) {
	databaseURL := cfg.EnvVars.DatabaseUrl
	backend, err := BackendFor(databaseURL)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("connecting to database",
		zap.String("backend", string(backend)),
		zap.String("url", redact(databaseURL)),
	)

	switch backend {
	case BackendMongo:
		return openMongo(ctx, databaseURL)
	case BackendPostgres:
		return openGorm(ctx, backend, postgres.Open(databaseURL))
	default:
		return openGorm(ctx, backend, sqlite.Open(SQLiteDSN(databaseURL)))
	}
}

// SQLiteDSN strips the sqlite:// scheme; file: URLs are passed through.
func SQLiteDSN(databaseURL string) string {
	return strings.TrimPrefix(databaseURL, "sqlite://")
}

// withRetry calls connect every retryInterval until it succeeds, ctx ends,
// or retryTimeout passes.
func withRetry(ctx context.Context, connect func() error) error {
	start := time.Now()
	for {
		err := connect()
		if err == nil {
			return nil
		}
		if time.Since(start) > retryTimeout {
			return fmt.Errorf("could not connect to database after 1 minute: %w", err)
		}
		logger.Get().Warn("could not connect to database, retrying...", zap.Error(err))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryInterval):
		}
	}
}

func openGorm(ctx context.Context, backend Backend, dialector gorm.Dialector) (*Store, error) {
	var database *gorm.DB
	err := withRetry(ctx, func() error {
		var err error
		database, err = gorm.Open(dialector, &gorm.Config{})
		return err
	})
	if err != nil {
		return nil, err
	}

	if backend == BackendSQLite {
		// SQLite allows a single writer.
		if sqlDB, err := database.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}

	if err := database.WithContext(ctx).AutoMigrate(&models.Recipe{}); err != nil {
		return nil, fmt.Errorf("failed to migrate recipe schema: %w", err)
	}

	return &Store{
		Backend: backend,
		Recipes: repository.NewRecipeRepository(database),
		close: func(context.Context) error {
			sqlDB, err := database.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}, nil
}

func openMongo(ctx context.Context, databaseURL string) (*Store, error) {
	var client *mongo.Client
	err := withRetry(ctx, func() error {
		c, err := mongo.Connect(ctx, options.Client().ApplyURI(databaseURL))
		if err != nil {
			return err
		}
		if err := c.Ping(ctx, readpref.Primary()); err != nil {
			_ = c.Disconnect(ctx)
			return err
		}
		client = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	database := client.Database(MongoDatabaseName(databaseURL))
	if err := migrations.EnsureRecipeIndexes(ctx, database); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &Store{
		Backend: BackendMongo,
		Recipes: repository.NewMongoRecipeRepository(database),
		close:   client.Disconnect,
	}, nil
}

// MongoDatabaseName returns the database named in the URL path, or DefaultMongoDatabase.
func MongoDatabaseName(databaseURL string) string {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return DefaultMongoDatabase
	}
	if name := strings.Trim(u.Path, "/"); name != "" {
		return name
	}
	return DefaultMongoDatabase
}

// redact hides the password of a URL for logging.
func redact(databaseURL string) string {
	u, err := url.Parse(databaseURL)
	if err != nil || u.User == nil {
		return databaseURL
	}
	return u.Redacted()
}
