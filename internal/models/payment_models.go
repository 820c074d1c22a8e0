package models

import "time"

// Payment statuses.
const (
	PaymentStatusPaid    = "Paid"
	PaymentStatusPending = "Pending"
	PaymentStatusOverdue = "Overdue"
)

// Payment types. A "payment" reduces what the member owes, a "charge"
// increases it.
const (
	PaymentTypePayment = "payment"
	PaymentTypeCharge  = "charge"
)

// Payment is an append-only ledger entry against a member's balance.
type Payment struct {
	ID          string    `json:"id" db:"id"`
	GymID       string    `json:"gym_id" db:"gym_id"`
	MemberID    string    `json:"member_id" db:"member_id"`
	Amount      float64   `json:"amount" db:"amount"`
	Method      string    `json:"method" db:"method"`
	Type        string    `json:"type" db:"type"`
	Status      string    `json:"status" db:"status"`
	Description *string   `json:"description,omitempty" db:"description"`
	PaymentDate time.Time `json:"payment_date" db:"payment_date"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	// Joined display fields, populated by the list query only.
	MemberName  string `json:"member_name,omitempty" db:"-"`
	MemberEmail string `json:"member_email,omitempty" db:"-"`
}
