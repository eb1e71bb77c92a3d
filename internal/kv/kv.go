// Package kv defines the persistence gateway: durable key-value storage the
// ledger reads at startup and writes after every mutation.
package kv

import (
	"context"
	"errors"
	"fmt"
)

// Gateway is the storage contract. Get reports ok=false for an absent key;
// err is reserved for the store being unreachable or unreadable.
type Gateway interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

var (
	// ErrWrite wraps a failed Set. Callers keep their in-memory state
	// authoritative and surface the failure without retrying.
	ErrWrite = errors.New("kv: write failed")

	// ErrRead wraps a failed Get. The ledger recovers by starting empty.
	ErrRead = errors.New("kv: read failed")
)

func WriteError(err error) error {
	return fmt.Errorf("%w: %v", ErrWrite, err)
}

func ReadError(err error) error {
	return fmt.Errorf("%w: %v", ErrRead, err)
}
