package main

import (
	"fmt"
	"os"

	"productivity-clock/internal/config"
	"productivity-clock/internal/persistence"
	"productivity-clock/internal/repository/sqlite"
	"productivity-clock/internal/services"
	"productivity-clock/internal/tui"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// HostFactory creates session hosts based on environment
type HostFactory struct {
	env Environment
}

// NewHostFactory creates a new host factory for the given environment
func NewHostFactory(env Environment) *HostFactory {
	return &HostFactory{env: env}
}

// CreateHost wires storage, notifications and the clock service for cfg
func (hf *HostFactory) CreateHost(cfg *config.Config) (services.Host, func() error, error) {
	repo, err := hf.createRepository(cfg)
	if err != nil {
		return nil, nil, err
	}

	sink, err := config.CreateSink(cfg)
	if err != nil {
		repo.Close()
		return nil, nil, fmt.Errorf("failed to configure notifications: %w", err)
	}

	host := services.NewClockService(persistence.NewSnapshotGateway(repo), sink, services.SystemClock, cfg,
		services.WithDarkDetector(tui.DetectDark))
	return host, repo.Close, nil
}

// createRepository creates a repository instance based on the current environment
func (hf *HostFactory) createRepository(cfg *config.Config) (sqlite.Repository, error) {
	switch hf.env {
	case Testing:
		// Nothing outlives the process
		return config.CreateTestRepository()
	case Development:
		// Keep development state next to the working copy
		dev := *cfg
		dev.Storage.Dir = "."
		return config.CreateRepository(&dev)
	default:
		return config.CreateRepository(cfg)
	}
}

// getEnvironment determines the current environment
func getEnvironment() Environment {
	switch os.Getenv("PC_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		// Default to production for safety
		return Production
	}
}
