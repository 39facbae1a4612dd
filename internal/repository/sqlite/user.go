package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/olivertwistor/financial-assets-manager/internal/domain"
)

// UserRepository implements domain.UserRepository on top of the
// connection handle.
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new SQLite-backed UserRepository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	err := r.db.Execute(ctx,
		`INSERT INTO users (email, display_name, password_hash, created_at, updated_at)
		 VALUES (:email, :display_name, :password_hash, :created_at, :updated_at)`,
		map[string]any{
			"email":         user.Email,
			"display_name":  user.DisplayName,
			"password_hash": user.PasswordHash,
			"created_at":    now,
			"updated_at":    now,
		})
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}

	user.ID = r.db.LastInsertedID()
	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx,
		`SELECT id, email, display_name, password_hash, created_at, updated_at
		 FROM users WHERE id = :id`,
		map[string]any{"id": id})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx,
		`SELECT id, email, display_name, password_hash, created_at, updated_at
		 FROM users WHERE email = :email`,
		map[string]any{"email": email})
}

func (r *UserRepository) getOne(ctx context.Context, query string, params map[string]any) (*domain.User, error) {
	rows, err := r.db.Query(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query user: %w", err)
		}
		return nil, domain.ErrNotFound
	}

	user := &domain.User{}
	err = rows.Scan(&user.ID, &user.Email, &user.DisplayName, &user.PasswordHash,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return user, nil
}
