package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/freshcart/freshcart/internal/pkg/logger"
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/services/auth"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
)

const userColumns = `id, phone, name, email, role, is_guest, created_at`

// GetUserByPhone retrieves a user by phone number. The restricted handle is
// tried first; an inconclusive read there (row-level security denial, any
// query failure, or no rows) falls back to the privileged handle before
// concluding not-found.
func (r *UserRepo) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE phone = $1`, userColumns)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, phone)
	if err == nil {
		return &user, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		logger.Warn("restricted user lookup failed, retrying on privileged handle",
			logger.String("phone", phone),
			logger.Err(err))
	}

	err = r.privileged.GetContext(ctx, &user, query, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// CreateUser inserts a new user over the privileged handle. A concurrent
// create for the same phone surfaces as ErrPhoneTaken so the caller can
// re-resolve instead of failing.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}

	query := `
		INSERT INTO users (id, phone, name, email, role, is_guest, created_at)
		VALUES (:id, :phone, :name, :email, :role, :is_guest, :created_at)
	`
	_, err := r.privileged.NamedExecContext(ctx, query, user)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return auth.ErrPhoneTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}
