package usecase

import (
	"context"

	"storefront/internal/domain/account"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/jwt"
	"storefront/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrAccountNotFound    = errs.New("account not found")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrAccountInactive    = errs.New("account is inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

// AuthAccountRepository is the read surface auth needs from accounts.
type AuthAccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*account.Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error)
}

type AccountView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Slug  string    `json:"slug"`
	Role  string    `json:"role"`
}

type AuthUseCase interface {
	Login(ctx context.Context, email, plainPassword string) (string, *AccountView, error)
	GetCurrentAccount(ctx context.Context, accountID uuid.UUID) (*AccountView, error)
}

type authUseCaseImpl struct {
	accountRepo AuthAccountRepository
	jwtService  *jwt.Service
}

func NewAuthUseCase(accountRepo AuthAccountRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		accountRepo: accountRepo,
		jwtService:  jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (string, *AccountView, error) {
	acc, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !acc.IsActive() {
		return "", nil, ErrAccountInactive
	}
	if err := password.ComparePassword(acc.PasswordHash(), plainPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(acc.ID(), acc.Role())
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, toAccountView(acc), nil
}

func (a *authUseCaseImpl) GetCurrentAccount(ctx context.Context, accountID uuid.UUID) (*AccountView, error) {
	acc, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, ErrAccountNotFound
	}
	if !acc.IsActive() {
		return nil, ErrAccountInactive
	}
	return toAccountView(acc), nil
}

func toAccountView(acc *account.Account) *AccountView {
	return &AccountView{
		ID:    acc.ID(),
		Email: acc.Email().Value(),
		Name:  acc.Name(),
		Slug:  acc.Slug(),
		Role:  acc.Role().String(),
	}
}
