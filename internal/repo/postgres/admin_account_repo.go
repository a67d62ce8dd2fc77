package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/syberke1354/exion-sub001/internal/domain/enums"
	"github.com/syberke1354/exion-sub001/internal/domain/model"
	"github.com/syberke1354/exion-sub001/internal/services/adminauth"
)

type AdminAccountRepo struct {
	pool *pgxpool.Pool
}

func NewAdminAccountRepo(pool *pgxpool.Pool) *AdminAccountRepo {
	return &AdminAccountRepo{pool: pool}
}

func (r *AdminAccountRepo) FindByEmail(ctx context.Context, email string) (model.AdminAccount, error) {
	if r.pool == nil {
		return model.AdminAccount{}, fmt.Errorf("postgres pool is nil")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return model.AdminAccount{}, adminauth.ErrAccountNotFound
	}

	var (
		account model.AdminAccount
		role    string
	)
	err := r.pool.QueryRow(ctx, `
SELECT id, email, name, role, is_active, last_login, created_at, updated_at
FROM admin_accounts
WHERE lower(email) = $1
`, email).Scan(
		&account.ID,
		&account.Email,
		&account.Name,
		&role,
		&account.IsActive,
		&account.LastLogin,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.AdminAccount{}, adminauth.ErrAccountNotFound
		}
		return model.AdminAccount{}, fmt.Errorf("find admin account by email: %w", err)
	}

	parsed, ok := enums.ParseRole(role)
	if !ok {
		return model.AdminAccount{}, fmt.Errorf("admin account %d has unknown role %q", account.ID, role)
	}
	account.Role = parsed

	return account, nil
}

func (r *AdminAccountRepo) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}
	if id <= 0 {
		return nil
	}

	if _, err := r.pool.Exec(ctx, `
UPDATE admin_accounts
SET last_login = $2, updated_at = NOW()
WHERE id = $1
`, id, at.UTC()); err != nil {
		return fmt.Errorf("touch admin last_login: %w", err)
	}

	return nil
}

// Create is used by the seed command, not the API surface.
func (r *AdminAccountRepo) Create(ctx context.Context, account model.AdminAccount) (model.AdminAccount, error) {
	if r.pool == nil {
		return model.AdminAccount{}, fmt.Errorf("postgres pool is nil")
	}
	if strings.TrimSpace(account.Email) == "" {
		return model.AdminAccount{}, fmt.Errorf("admin email is required")
	}

	err := r.pool.QueryRow(ctx, `
INSERT INTO admin_accounts (email, name, role, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, NOW(), NOW())
ON CONFLICT (email) DO UPDATE SET
	name = EXCLUDED.name,
	role = EXCLUDED.role,
	is_active = EXCLUDED.is_active,
	updated_at = NOW()
RETURNING id, created_at, updated_at
`,
		strings.ToLower(strings.TrimSpace(account.Email)),
		strings.TrimSpace(account.Name),
		string(account.Role),
		account.IsActive,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return model.AdminAccount{}, fmt.Errorf("create admin account: %w", err)
	}

	return account, nil
}
