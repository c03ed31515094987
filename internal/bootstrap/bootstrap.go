package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	appMigrations "github.com/sekolahku/siakad/internal/app/migrations"
	appRepos "github.com/sekolahku/siakad/internal/app/repositories"
	appServices "github.com/sekolahku/siakad/internal/app/services"
	"github.com/sekolahku/siakad/internal/config"
	"github.com/sekolahku/siakad/internal/db"
	"github.com/sekolahku/siakad/internal/pkg/filestorage"
	"github.com/sekolahku/siakad/internal/pkg/logger"
	"github.com/sekolahku/siakad/internal/seed"
)

// Dependencies holds the wired application components.
type Dependencies struct {
	Config      *config.Config
	DB          *db.PostgresDB
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	FileStorage *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and configures the global
// logger from it.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "console"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	logger.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase establishes the connection pool and applies the embedded
// migrations.
func SetupDatabase(cfg *config.Config) (*db.PostgresDB, error) {
	logger.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	logger.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.Migrate(ctx, appMigrations.Files()); err != nil {
		logger.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	logger.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// Setup wires all application components. When runSeed is set the default
// data is created after migrations.
func Setup(runSeed bool) (*Dependencies, error) {
	cfg, err := LoadConfigAndSetupLogger()
	if err != nil {
		return nil, err
	}

	database, err := SetupDatabase(cfg)
	if err != nil {
		return nil, err
	}

	if runSeed {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := seed.CreateDefaultData(ctx, database.Pool, cfg); err != nil {
			logger.Error().Err(err).Msg("Error creating default data")
			database.Close()
			return nil, err
		}
	}

	storage, err := filestorage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		database.Close()
		return nil, err
	}

	repos := appRepos.NewRepositories(database.Pool)
	services := appServices.NewServices(database, repos, storage)

	return &Dependencies{
		Config:      cfg,
		DB:          database,
		Repos:       repos,
		Services:    services,
		FileStorage: storage,
	}, nil
}
