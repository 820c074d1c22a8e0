package repositories

import (
	"database/sql"
	"fmt"

	"gymdesk_backend/internal/models"
	"gymdesk_backend/pkg/utils"
)

// CatalogRepository serves the package and trainer lists. Both are
// read-only collaborators of the dashboard.
type CatalogRepository interface {
	ListPackages(gymID string) ([]models.Package, error)
	ListTrainers(gymID string) ([]models.Trainer, error)
}

type catalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new instance of CatalogRepository.
func NewCatalogRepository(db *sql.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListPackages(gymID string) ([]models.Package, error) {
	query := `SELECT id, gym_id, name, duration_days, price, description, created_at
	          FROM packages WHERE gym_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(query, gymID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying packages: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	packages := []models.Package{}
	for rows.Next() {
		var p models.Package
		var description sql.NullString
		if err := rows.Scan(&p.ID, &p.GymID, &p.Name, &p.DurationDays, &p.Price, &description, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning package: %v", ErrDatabaseError, err)
		}
		p.Description = utils.NullStringPtr(description)
		packages = append(packages, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating package rows: %v", ErrDatabaseError, err)
	}
	return packages, nil
}

func (r *catalogRepository) ListTrainers(gymID string) ([]models.Trainer, error) {
	query := `SELECT id, gym_id, full_name, email, phone, specialization, rating, created_at
	          FROM trainers WHERE gym_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(query, gymID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying trainers: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	trainers := []models.Trainer{}
	for rows.Next() {
		var t models.Trainer
		var specialization sql.NullString
		if err := rows.Scan(&t.ID, &t.GymID, &t.FullName, &t.Email, &t.Phone, &specialization, &t.Rating, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning trainer: %v", ErrDatabaseError, err)
		}
		t.Specialization = utils.NullStringPtr(specialization)
		trainers = append(trainers, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating trainer rows: %v", ErrDatabaseError, err)
	}
	return trainers, nil
}
