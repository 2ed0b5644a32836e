//go:build unit || e2e

package builder

import (
	"time"

	"storefront/internal/domain/account"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type AccountBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Slug         string
	Role         account.Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewAccountBuilder() *AccountBuilder {
	now := time.Now()
	return &AccountBuilder{
		ID:           uuid.New(),
		Email:        "seller@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Name:         "Acme Furniture",
		Slug:         "acme-furniture",
		Role:         account.RoleSeller,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *AccountBuilder) With(mutate func(*AccountBuilder)) *AccountBuilder {
	mutate(b)
	return b
}

func (b *AccountBuilder) BuildDomain() *account.Account {
	email, _ := account.NewEmail(b.Email)
	return account.Restore(b.ID, email, b.PasswordHash, b.Name, b.Slug, b.Role, b.IsActive, b.CreatedAt, b.UpdatedAt)
}

func (b *AccountBuilder) BuildCloneRequestDTO() reqdto.CloneAccountRequest {
	return reqdto.CloneAccountRequest{
		Email:    b.Email,
		Password: "correct-horse-battery",
		Name:     b.Name,
		Slug:     b.Slug,
	}
}

func (b *AccountBuilder) BuildCloneAttributes() usecase.NewAccountAttributes {
	return usecase.NewAccountAttributes{
		Email:    b.Email,
		Password: "correct-horse-battery",
		Name:     b.Name,
		Slug:     b.Slug,
	}
}
