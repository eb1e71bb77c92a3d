package kv

import (
	"fmt"
	"log/slog"

	"bilancio/internal/kv/memory"
	"bilancio/internal/kv/redis"
	"bilancio/internal/kv/sqlite"
)

const (
	MemoryBackend BackendType = "memory"
	SQLiteBackend BackendType = "sqlite"
	RedisBackend  BackendType = "redis"
)

type (
	BackendType string

	// Config holds configuration for gateway creation.
	Config struct {
		Type BackendType

		// SQLite specific
		SQLiteDBPath string

		// Redis specific
		RedisAddr     string
		RedisUsername string
		RedisPassword string
		RedisDB       int
		RedisPrefix   string
	}

	// CleanupFunc releases gateway resources.
	CleanupFunc func() error

	// Result contains the gateway instance and its cleanup function.
	Result struct {
		Gateway Gateway
		Cleanup CleanupFunc
	}
)

func (bt BackendType) String() string { return string(bt) }

func (bt BackendType) IsValid() bool {
	switch bt {
	case MemoryBackend, SQLiteBackend, RedisBackend:
		return true
	default:
		return false
	}
}

func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid kv backend type: %s", c.Type)
	}
	switch c.Type {
	case SQLiteBackend:
		if c.SQLiteDBPath == "" {
			return fmt.Errorf("sqlite database path is required for sqlite backend")
		}
	case RedisBackend:
		if c.RedisAddr == "" {
			return fmt.Errorf("redis address is required for redis backend")
		}
	}
	return nil
}

// Factory creates gateways based on configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

func (f *Factory) CreateGateway(config Config) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case SQLiteBackend:
		gw, err := sqlite.New(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite gateway: %w", err)
		}
		f.logger.Info("Initialized SQLite gateway", "db_path", config.SQLiteDBPath)
		return &Result{Gateway: gw, Cleanup: gw.Close}, nil

	case RedisBackend:
		cfg := redis.DefaultConfig()
		cfg.Addr = config.RedisAddr
		cfg.Username = config.RedisUsername
		cfg.Password = config.RedisPassword
		cfg.DB = config.RedisDB
		// Storage keys already carry the app namespace; an extra prefix is
		// opt-in via config.
		cfg.KeyPrefix = config.RedisPrefix
		gw, err := redis.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("initialize redis gateway: %w", err)
		}
		f.logger.Info("Initialized Redis gateway", "addr", config.RedisAddr)
		return &Result{Gateway: gw, Cleanup: gw.Close}, nil

	default:
		gw := memory.New()
		f.logger.Info("Initialized memory gateway")
		return &Result{Gateway: gw, Cleanup: gw.Close}, nil
	}
}
