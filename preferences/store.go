package preferences

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"

	"pitchside/config"
)

// Preference keys, shared with the query parameter names they feed
const (
	KeyPageSize = config.ParamPageSize
	KeyOrderBy  = config.ParamOrderBy
)

// Defaults substituted when a preference is missing
const (
	DefaultPageSize = "10"
	DefaultOrderBy  = "newest"

	// MaxPageSize is the largest page the content API will serve
	MaxPageSize = 200
)

// ErrInvalidPreference is wrapped by every Validate failure
var ErrInvalidPreference = errors.New("invalid preference")

// OrderByOptions lists the orderings accepted by the content API
var OrderByOptions = []string{"newest", "oldest", "relevance"}

// Store is a string key-value store for user preferences
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Values are the two user-chosen query parameters
type Values struct {
	PageSize string `json:"page-size"`
	OrderBy  string `json:"order-by"`
}

// Resolve reads both preferences, substituting the defaults when a value is
// missing, empty, or the store fails. Store errors are logged, never returned.
func Resolve(ctx context.Context, store Store) Values {
	return Values{
		PageSize: lookup(ctx, store, KeyPageSize, DefaultPageSize),
		OrderBy:  lookup(ctx, store, KeyOrderBy, DefaultOrderBy),
	}
}

func lookup(ctx context.Context, store Store, key, defaultValue string) string {
	if store == nil {
		return defaultValue
	}
	value, ok, err := store.Get(ctx, key)
	if err != nil {
		log.Printf("preferences: reading %q failed, using default %q: %v", key, defaultValue, err)
		return defaultValue
	}
	if !ok || value == "" {
		return defaultValue
	}
	return value
}

// Validate checks a value before it is written to the store
func Validate(key, value string) error {
	switch key {
	case KeyPageSize:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidPreference, key, value)
		}
		if n < 1 || n > MaxPageSize {
			return fmt.Errorf("%w: %s must be between 1 and %d, got %d", ErrInvalidPreference, key, MaxPageSize, n)
		}
		return nil
	case KeyOrderBy:
		for _, opt := range OrderByOptions {
			if value == opt {
				return nil
			}
		}
		return fmt.Errorf("%w: %s must be one of %v, got %q", ErrInvalidPreference, key, OrderByOptions, value)
	default:
		return fmt.Errorf("%w: unknown key %q", ErrInvalidPreference, key)
	}
}

// Save validates and writes every non-empty field of v
func Save(ctx context.Context, store Store, v Values) error {
	fields := []struct{ key, value string }{
		{KeyPageSize, v.PageSize},
		{KeyOrderBy, v.OrderBy},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if err := Validate(f.key, f.value); err != nil {
			return err
		}
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if err := store.Set(ctx, f.key, f.value); err != nil {
			return fmt.Errorf("saving %s: %w", f.key, err)
		}
	}
	return nil
}

// NextOrderBy returns the ordering after current in OrderByOptions, wrapping around
func NextOrderBy(current string) string {
	for i, opt := range OrderByOptions {
		if opt == current {
			return OrderByOptions[(i+1)%len(OrderByOptions)]
		}
	}
	return OrderByOptions[0]
}

// StepPageSize adds delta to a page size, clamping to [1, MaxPageSize].
// A malformed current value restarts from the default.
func StepPageSize(current string, delta int) string {
	n, err := strconv.Atoi(current)
	if err != nil {
		n, _ = strconv.Atoi(DefaultPageSize)
	}
	n += delta
	if n < 1 {
		n = 1
	}
	if n > MaxPageSize {
		n = MaxPageSize
	}
	return strconv.Itoa(n)
}

// MemoryStore keeps preferences in process memory
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the stored value for key
func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set stores value under key
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
