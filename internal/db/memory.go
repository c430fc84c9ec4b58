package db

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hsm-gustavo/smart-pantry/internal/common"
)

// MemoryStore keeps users and inventory items for the lifetime of the
// process. Users and the email index share one lock so that uniqueness is
// checked and recorded atomically. Items live in per-owner buckets, each
// with its own lock, so writers for different users never contend.
//
// Records are copied on the way in and on the way out.
type MemoryStore struct {
	usersMu    sync.RWMutex
	users      map[string]User
	emailIndex map[string]string

	bucketsMu sync.RWMutex
	buckets   map[string]*itemBucket

	now func() time.Time
}

type itemBucket struct {
	mu    sync.RWMutex
	items map[string]Item
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      map[string]User{},
		emailIndex: map[string]string{},
		buckets:    map[string]*itemBucket{},
		now:        time.Now,
	}
}

// WithClock replaces the time source used for record timestamps.
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.now = now
	return s
}

// CreateUser stores u. The email must already be normalized by the caller.
// CreatedAt is set when zero.
func (s *MemoryStore) CreateUser(ctx context.Context, u User) (User, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	if _, exists := s.emailIndex[u.Email]; exists {
		return User{}, fmt.Errorf("email %q: %w", u.Email, common.ErrConflict)
	}
	if _, exists := s.users[u.ID]; exists {
		return User{}, fmt.Errorf("user id %q: %w", u.ID, common.ErrConflict)
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now().UTC()
	}

	s.users[u.ID] = u
	s.emailIndex[u.Email] = u.ID
	return u, nil
}

func (s *MemoryStore) FindUserByEmail(ctx context.Context, email string) (User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	id, ok := s.emailIndex[email]
	if !ok {
		return User{}, common.ErrNotFound
	}
	return s.users[id], nil
}

func (s *MemoryStore) GetUserByID(ctx context.Context, id string) (User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return User{}, common.ErrNotFound
	}
	return u, nil
}

// bucket returns the owner's item bucket, creating it when create is set.
func (s *MemoryStore) bucket(owner string, create bool) *itemBucket {
	s.bucketsMu.RLock()
	b, ok := s.buckets[owner]
	s.bucketsMu.RUnlock()
	if ok || !create {
		return b
	}

	s.bucketsMu.Lock()
	defer s.bucketsMu.Unlock()
	if b, ok = s.buckets[owner]; ok {
		return b
	}
	b = &itemBucket{items: map[string]Item{}}
	s.buckets[owner] = b
	return b
}

// SaveItem inserts or replaces it under it.UserID. CreatedAt is set on
// first save when zero; UpdatedAt is refreshed on every save.
// Concurrent saves of the same item resolve as last write wins.
func (s *MemoryStore) SaveItem(ctx context.Context, it Item) (Item, error) {
	if it.UserID == "" || it.ID == "" {
		return Item{}, fmt.Errorf("item needs owner and id: %w", common.ErrValidation)
	}

	now := s.now().UTC()
	if it.CreatedAt.IsZero() {
		it.CreatedAt = now
	}
	it.UpdatedAt = now

	b := s.bucket(it.UserID, true)
	b.mu.Lock()
	b.items[it.ID] = it
	b.mu.Unlock()

	return it, nil
}

func (s *MemoryStore) GetItem(ctx context.Context, owner, id string) (Item, error) {
	b := s.bucket(owner, false)
	if b == nil {
		return Item{}, common.ErrNotFound
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	it, ok := b.items[id]
	if !ok {
		return Item{}, common.ErrNotFound
	}
	return it, nil
}

// ListItems returns the owner's items in no particular order.
func (s *MemoryStore) ListItems(ctx context.Context, owner string) ([]Item, error) {
	b := s.bucket(owner, false)
	if b == nil {
		return []Item{}, nil
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Item, 0, len(b.items))
	for _, it := range b.items {
		out = append(out, it)
	}
	return out, nil
}

// DeleteItem removes the item if present. Absence is not an error.
func (s *MemoryStore) DeleteItem(ctx context.Context, owner, id string) error {
	b := s.bucket(owner, false)
	if b == nil {
		return nil
	}

	b.mu.Lock()
	delete(b.items, id)
	b.mu.Unlock()
	return nil
}
