// Package redis backs the persistence gateway with a Redis server.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

type Config struct {
	Addr      string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
}

func DefaultConfig() Config {
	return Config{
		Addr: "localhost:6379",
	}
}

type Gateway struct {
	client rueidis.Client
	prefix string
}

func New(config Config) (*Gateway, error) {
	if config.Addr == "" {
		return nil, fmt.Errorf("redis: no address configured")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress: []string{config.Addr},
		Username:    config.Username,
		Password:    config.Password,
		SelectDB:    config.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("redis: create client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis: ping server: %w", err)
	}

	return &Gateway{client: client, prefix: config.KeyPrefix}, nil
}

func (g *Gateway) Get(ctx context.Context, key string) (string, bool, error) {
	cmd := g.client.B().Get().Key(g.prefix + key).Build()
	resp := g.client.Do(ctx, cmd)
	if err := resp.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	value, err := resp.ToString()
	if err != nil {
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return value, true, nil
}

func (g *Gateway) Set(ctx context.Context, key, value string) error {
	cmd := g.client.B().Set().Key(g.prefix + key).Value(value).Build()
	if err := g.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (g *Gateway) Close() error {
	g.client.Close()
	return nil
}
