package repository

import (
	"context"

	"society-booking/internal/infra"
	"society-booking/internal/infra/db"
	"society-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const createUserSQL = `
INSERT INTO users (id, email, password_hash, first_name, last_name, unit_number, role, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id
`

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u shared.UserWrite) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createUserSQL,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.UnitNumber, u.Role, u.IsActive,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyPgErr("failed to create user", err)
	}
	return id, nil
}

const updateLastLoginSQL = `UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	tag, err := tx.Exec(ctx, updateLastLoginSQL, userID)
	if err != nil {
		return classifyPgErr("failed to update user last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
