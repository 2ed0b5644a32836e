package account

import (
	"time"

	"github.com/google/uuid"
)

// Account is a storefront tenant: a seller with its own catalog namespace.
type Account struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	name         string
	slug         string
	role         Role
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAccount(email Email, passwordHash, name, slug string) (*Account, error) {
	if slug == "" {
		return nil, ErrEmptySlug
	}
	return &Account{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		slug:         slug,
		role:         RoleSeller,
		isActive:     true,
	}, nil
}

// Restore rebuilds an account from persisted state.
func Restore(id uuid.UUID, email Email, passwordHash, name, slug string, role Role, isActive bool, createdAt, updatedAt time.Time) *Account {
	return &Account{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		slug:         slug,
		role:         role,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (a *Account) ID() uuid.UUID        { return a.id }
func (a *Account) Email() Email         { return a.email }
func (a *Account) PasswordHash() string { return a.passwordHash }
func (a *Account) Name() string         { return a.name }
func (a *Account) Slug() string         { return a.slug }
func (a *Account) Role() Role           { return a.role }
func (a *Account) IsActive() bool       { return a.isActive }
func (a *Account) CreatedAt() time.Time { return a.createdAt }
func (a *Account) UpdatedAt() time.Time { return a.updatedAt }
