package repository

import (
	"context"
	"time"

	"storefront/internal/domain/account"
	"storefront/internal/infra"
	"storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AccountRepository struct {
	db infra.DBTX
}

func NewAccountRepository(db infra.DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

const insertAccountSQL = `
INSERT INTO accounts (id, email, password_hash, name, slug, role, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
RETURNING id`

func (r *AccountRepository) Create(ctx context.Context, acc *account.Account) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertAccountSQL,
		acc.ID(), acc.Email().Value(), acc.PasswordHash(), acc.Name(), acc.Slug(),
		acc.Role().String(), acc.IsActive(),
	).Scan(&id)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("account email or slug already taken", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create account", err)
	}
	return id, nil
}

const selectAccountSQL = `
SELECT id, email, password_hash, name, slug, role, is_active, created_at, updated_at
FROM accounts `

type accountRow struct {
	id           uuid.UUID
	email        string
	passwordHash string
	name         string
	slug         string
	role         string
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return r.findOne(ctx, selectAccountSQL+`WHERE id = $1`, id)
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	return r.findOne(ctx, selectAccountSQL+`WHERE email = $1`, email)
}

func (r *AccountRepository) findOne(ctx context.Context, sql string, arg any) (*account.Account, error) {
	var row accountRow
	err := r.db.QueryRow(ctx, sql, arg).Scan(
		&row.id, &row.email, &row.passwordHash, &row.name, &row.slug,
		&row.role, &row.isActive, &row.createdAt, &row.updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find account", err)
	}
	return rowToAccount(row)
}

func rowToAccount(row accountRow) (*account.Account, error) {
	email, err := account.NewEmail(row.email)
	if err != nil {
		return nil, infra.WrapRepoErr("stored account email is invalid", err)
	}
	role, err := account.NewRole(row.role)
	if err != nil {
		return nil, infra.WrapRepoErr("stored account role is invalid", err)
	}
	return account.Restore(row.id, email, row.passwordHash, row.name, row.slug, role, row.isActive, row.createdAt, row.updatedAt), nil
}
