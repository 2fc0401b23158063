// Package memory provides mutex-guarded in-memory repository implementations.
// They mirror the sentinel-error behavior of the postgres repositories and
// back the test suites.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mkuznecov/bookmarkd/pkg/account"
)

type AccountRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]account.Account
	byEmail map[string]uuid.UUID
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		byID:    make(map[uuid.UUID]account.Account),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *AccountRepository) Create(_ context.Context, acct account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[acct.Email]; exists {
		return account.ErrCredentialsTaken
	}
	r.byID[acct.ID] = acct
	r.byEmail[acct.Email] = acct.ID
	return nil
}

func (r *AccountRepository) GetByEmail(_ context.Context, email string) (account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return account.Account{}, account.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *AccountRepository) GetByID(_ context.Context, id uuid.UUID) (account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acct, ok := r.byID[id]
	if !ok {
		return account.Account{}, account.ErrNotFound
	}
	return acct, nil
}

func (r *AccountRepository) Update(_ context.Context, acct account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.byID[acct.ID]
	if !ok {
		return account.ErrNotFound
	}
	if acct.Email != prev.Email {
		if _, exists := r.byEmail[acct.Email]; exists {
			return account.ErrCredentialsTaken
		}
		delete(r.byEmail, prev.Email)
		r.byEmail[acct.Email] = acct.ID
	}
	r.byID[acct.ID] = acct
	return nil
}

// Delete removes an account. Used by tests to simulate a stale token whose
// subject no longer exists.
func (r *AccountRepository) Delete(_ context.Context, id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if acct, ok := r.byID[id]; ok {
		delete(r.byEmail, acct.Email)
		delete(r.byID, id)
	}
}
