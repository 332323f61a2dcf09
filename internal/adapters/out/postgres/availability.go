package postgres

import (
	"context"
	"sync"
	"sync/atomic"

	"gorm.io/gorm"
)

// Availability is the gate HTTP handlers consult before touching the database.
// It starts closed and is opened by the storage probe.
type Availability struct {
	available atomic.Bool
}

func NewAvailability() *Availability {
	return &Availability{}
}

func (a *Availability) IsAvailable() bool {
	return a.available.Load()
}

// Set stores the new state and reports whether it changed.
func (a *Availability) Set(available bool) bool {
	return a.available.Swap(available) != available
}

// Storage bundles the connection with the one-time schema setup the probe
// performs on its first successful ping.
type Storage struct {
	db *gorm.DB

	mu       sync.Mutex
	prepared bool
}

func NewStorage(db *gorm.DB) *Storage {
	return &Storage{db: db}
}

// Check pings the database and, on the first success, migrates and seeds the
// schema. A failed migration is retried on the next check.
func (s *Storage) Check(ctx context.Context) error {
	if err := Ping(ctx, s.db); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.prepared {
		return nil
	}

	if err := Migrate(ctx, s.db); err != nil {
		return err
	}
	if err := Seed(ctx, s.db); err != nil {
		return err
	}

	s.prepared = true
	return nil
}
