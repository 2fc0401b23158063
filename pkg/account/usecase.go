package account

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// UseCase describes registration, authentication and profile behavior.
type UseCase interface {
	SignUp(ctx context.Context, in SignUpInput) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, in ProfileUpdate) (Account, error)
}

// SignUpInput carries already-validated registration fields. Handlers are
// responsible for rejecting malformed input before this layer runs.
type SignUpInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// ProfileUpdate is a partial update; nil fields are left unchanged.
type ProfileUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
}

type service struct {
	repo   Repository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewService returns the default implementation of UseCase.
func NewService(repo Repository, hasher PasswordHasher, tokens TokenIssuer) UseCase {
	return &service{repo: repo, hasher: hasher, tokens: tokens}
}

// SignUp hashes the password and inserts the account in a single atomic call.
// Concurrent signups racing on the same email are resolved by the store's
// unique constraint: exactly one wins, the rest get ErrCredentialsTaken.
func (s *service) SignUp(ctx context.Context, in SignUpInput) (string, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	acct := Account{
		ID:           uuid.New(),
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, acct); err != nil {
		return "", err
	}
	return s.tokens.Issue(ctx, acct)
}

// SignIn verifies credentials and issues a fresh access token. A lookup miss
// and a password mismatch both return ErrInvalidCredentials so the response
// cannot reveal whether the email is registered. Note: the hashing cost is
// skipped on a lookup miss, which leaves a latency difference between the
// two cases. Known limitation.
func (s *service) SignIn(ctx context.Context, email, password string) (string, error) {
	acct, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !s.hasher.Verify(password, acct.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(ctx, acct)
}

// UpdateProfile applies a partial edit to the account. An email change is
// subject to the same uniqueness constraint as signup and surfaces a
// conflict as ErrCredentialsTaken.
func (s *service) UpdateProfile(ctx context.Context, id uuid.UUID, in ProfileUpdate) (Account, error) {
	acct, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Account{}, err
	}
	if in.Email != nil {
		acct.Email = *in.Email
	}
	if in.FirstName != nil {
		acct.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		acct.LastName = *in.LastName
	}
	acct.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, acct); err != nil {
		return Account{}, err
	}
	return acct, nil
}
