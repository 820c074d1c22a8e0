package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gymdesk_backend/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq" // For pq.Error
)

// AuthRepository stores gym owner accounts. One account per gym; the
// gym id doubles as the tenant id.
type AuthRepository interface {
	CreateGym(executor SQLExecutor, gym *models.Gym, passwordHash string) error
	FindGymByEmail(email string) (*models.Gym, string, error) // Returns Gym, PasswordHash, Error
	FindGymByID(id string) (*models.Gym, error)
}

type authRepository struct {
	db *sql.DB
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(db *sql.DB) AuthRepository {
	return &authRepository{db: db}
}

// CreateGym inserts a new gym owner account.
func (r *authRepository) CreateGym(executor SQLExecutor, gym *models.Gym, passwordHash string) error {
	query := `INSERT INTO gyms (id, name, email, password_hash, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	now := time.Now()
	gym.ID = uuid.NewString()
	gym.CreatedAt = now
	gym.UpdatedAt = now

	_, err := executor.Exec(query, gym.ID, gym.Name, gym.Email, passwordHash, gym.CreatedAt, gym.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return fmt.Errorf("%w: creating gym: %v", ErrDatabaseError, err)
	}
	return nil
}

// FindGymByEmail returns the gym and its password hash for login.
func (r *authRepository) FindGymByEmail(email string) (*models.Gym, string, error) {
	gym := &models.Gym{}
	var hash string
	query := `SELECT id, name, email, password_hash, created_at, updated_at FROM gyms WHERE email = $1`
	err := r.db.QueryRow(query, email).Scan(&gym.ID, &gym.Name, &gym.Email, &hash, &gym.CreatedAt, &gym.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("%w: finding gym by email: %v", ErrDatabaseError, err)
	}
	return gym, hash, nil
}

// FindGymByID returns the gym record for a tenant id.
func (r *authRepository) FindGymByID(id string) (*models.Gym, error) {
	gym := &models.Gym{}
	query := `SELECT id, name, email, created_at, updated_at FROM gyms WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&gym.ID, &gym.Name, &gym.Email, &gym.CreatedAt, &gym.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding gym by id %s: %v", ErrDatabaseError, id, err)
	}
	return gym, nil
}
