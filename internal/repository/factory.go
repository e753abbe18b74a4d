// Package repository provides the initialization for repository implementations
package repository

import (
	"log"

	"github.com/IngridGit24/MeetingPlanner/internal/config"
	"github.com/IngridGit24/MeetingPlanner/internal/repository/memory"
	"github.com/IngridGit24/MeetingPlanner/internal/repository/redis"
)

// Constructor indirection so the factory can be exercised in tests without
// reaching for a live backend
var (
	newRedisRepository  func(cfg config.RedisConfig) (Repository, error)
	newMemoryRepository func() Repository
)

// init registers the actual repository implementations
func init() {
	newRedisRepository = func(cfg config.RedisConfig) (Repository, error) {
		return redis.NewRepository(cfg)
	}

	newMemoryRepository = func() Repository {
		return memory.NewRepository()
	}
}

// NewRepository returns the repository implementation selected by the
// configuration: Redis when enabled, the in-memory store otherwise
func NewRepository(cfg config.RedisConfig) (Repository, error) {
	if cfg.Enabled {
		repo, err := newRedisRepository(cfg)
		if err != nil {
			return nil, err
		}
		log.Printf("Using Redis repository at %s:%s", cfg.Host, cfg.Port)
		return repo, nil
	}

	log.Println("Using in-memory repository")
	return newMemoryRepository(), nil
}
