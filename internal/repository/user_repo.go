package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"playprotect/internal/database"
	"playprotect/internal/models"
	"playprotect/internal/validation"
)

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db database.DBTX
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a user account, assigning an id if absent
func (r *UserRepository) CreateUser(user *models.User) error {
	if err := validation.ValidateUser(user); err != nil {
		return fmt.Errorf("invalid user: %w", err)
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	query := `
		INSERT INTO users (id, name, role, age_group, pin_hash, parent_email)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	if _, err := r.db.Exec(query, user.ID, user.Name, user.Role, user.AgeGroup, user.PinHash, user.ParentEmail); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by id
func (r *UserRepository) GetUserByID(id string) (*models.User, error) {
	query := `
		SELECT id, name, role, age_group, pin_hash, parent_email, created_at, updated_at
		FROM users
		WHERE id = ?
	`
	user := &models.User{}
	err := r.db.QueryRow(query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Role,
		&user.AgeGroup,
		&user.PinHash,
		&user.ParentEmail,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetChildUsers retrieves all child accounts
func (r *UserRepository) GetChildUsers() ([]models.User, error) {
	return r.queryUsers(`
		SELECT id, name, role, age_group, pin_hash, parent_email, created_at, updated_at
		FROM users
		WHERE role = ?
		ORDER BY created_at ASC
	`, models.RoleChild)
}

// GetAllUsers retrieves every account
func (r *UserRepository) GetAllUsers() ([]models.User, error) {
	return r.queryUsers(`
		SELECT id, name, role, age_group, pin_hash, parent_email, created_at, updated_at
		FROM users
		ORDER BY created_at ASC
	`)
}

func (r *UserRepository) queryUsers(query string, args ...interface{}) ([]models.User, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Role,
			&user.AgeGroup,
			&user.PinHash,
			&user.ParentEmail,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
