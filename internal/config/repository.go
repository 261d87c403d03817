package config

import (
	"fmt"
	"os"

	"productivity-clock/internal/repository/sqlite"
)

// CreateRepository creates a repository instance using the configuration system
func CreateRepository(config *Config) (sqlite.Repository, error) {
	if err := os.MkdirAll(config.Storage.Dir, os.FileMode(config.Storage.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", config.Storage.Dir, err)
	}

	repo, err := sqlite.NewWithOptions(config.GetDatabasePath(), sqlite.Options{
		QueryTimeout: config.Storage.QueryTimeout,
		WriteTimeout: config.Storage.WriteTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
