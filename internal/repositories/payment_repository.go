package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"gymdesk_backend/internal/models"
	"gymdesk_backend/pkg/utils"

	"github.com/google/uuid"
)

// PaymentRepository is the append-only payment ledger, scoped by gym.
type PaymentRepository interface {
	List(gymID string) ([]models.Payment, error)
	Insert(executor SQLExecutor, payment *models.Payment) error
}

type paymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a new instance of PaymentRepository.
func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// List returns a gym's payments joined with member display fields,
// newest first.
func (r *paymentRepository) List(gymID string) ([]models.Payment, error) {
	query := `SELECT p.id, p.gym_id, p.member_id, p.amount, p.method, p.type, p.status,
	                 p.description, p.payment_date, p.created_at,
	                 m.full_name, m.email
	          FROM payments p
	          JOIN members m ON m.id = p.member_id AND m.gym_id = p.gym_id
	          WHERE p.gym_id = $1
	          ORDER BY p.created_at DESC`

	rows, err := r.db.Query(query, gymID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying payments: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var p models.Payment
		var description sql.NullString
		if err := rows.Scan(
			&p.ID, &p.GymID, &p.MemberID, &p.Amount, &p.Method, &p.Type, &p.Status,
			&description, &p.PaymentDate, &p.CreatedAt,
			&p.MemberName, &p.MemberEmail,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning payment: %v", ErrDatabaseError, err)
		}
		p.Description = utils.NullStringPtr(description)
		payments = append(payments, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating payment rows: %v", ErrDatabaseError, err)
	}
	return payments, nil
}

// Insert appends a ledger entry. The id and created_at are assigned
// here. The balance effect on the member is the caller's transaction.
func (r *paymentRepository) Insert(executor SQLExecutor, payment *models.Payment) error {
	query := `INSERT INTO payments (id, gym_id, member_id, amount, method, type, status, description, payment_date, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	now := time.Now()
	payment.ID = uuid.NewString()
	payment.CreatedAt = now
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = now
	}

	_, err := executor.Exec(query,
		payment.ID, payment.GymID, payment.MemberID, payment.Amount,
		payment.Method, payment.Type, payment.Status,
		utils.StringToNull(payment.Description), payment.PaymentDate, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: creating payment: %v", ErrDatabaseError, err)
	}
	return nil
}
