package kvstore

import (
	"context"
	"sync"

	"github.com/medidash/clinic-api/internal/model"
	"github.com/medidash/clinic-api/internal/store"
)

// SessionRepository holds the current operator identity, mirrored to the
// "user" slot. Unlike the collections it has no seed: the initial state is
// whatever the slot holds from a prior run, or nobody.
type SessionRepository struct {
	store store.Store

	mu     sync.Mutex
	loaded bool
	user   *model.User
}

func NewSessionRepository(s store.Store) *SessionRepository {
	return &SessionRepository{store: s}
}

func (r *SessionRepository) load(ctx context.Context) {
	if r.loaded {
		return
	}
	r.loaded = true

	var user *model.User
	if r.store.Get(ctx, store.KeyUser, &user) {
		r.user = user
	}
}

func (r *SessionRepository) Get(ctx context.Context) *model.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx)
	return r.user
}

func (r *SessionRepository) Set(ctx context.Context, user *model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaded = true
	r.user = user
	r.store.Set(ctx, store.KeyUser, user)
}

func (r *SessionRepository) Clear(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaded = true
	r.user = nil
	r.store.Set(ctx, store.KeyUser, nil)
}
