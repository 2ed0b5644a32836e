package response

import (
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type AccountResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Slug  string    `json:"slug"`
	Role  string    `json:"role"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	Account     AccountResponse `json:"account"`
}

func FromAccountView(v *usecase.AccountView) AccountResponse {
	return AccountResponse{
		ID:    v.ID,
		Email: v.Email,
		Name:  v.Name,
		Slug:  v.Slug,
		Role:  v.Role,
	}
}
