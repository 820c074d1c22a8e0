package models

import "time"

// Membership lifecycle states. Dormant is what some dashboard views
// label "Expired"; the stored value is always Dormant.
const (
	StatusActive    = "Active"
	StatusCancelled = "Cancelled"
	StatusDormant   = "Dormant"
	StatusPending   = "Pending" // reserved, no flow targets it yet
)

// Member represents a gym member. Every member belongs to exactly one
// gym (GymID) and all access is filtered by it.
type Member struct {
	ID    string `json:"id" db:"id"`
	GymID string `json:"gym_id" db:"gym_id"`

	FullName             string  `json:"full_name" db:"full_name"`
	Email                string  `json:"email" db:"email"`
	Phone                string  `json:"phone" db:"phone"`
	Gender               string  `json:"gender" db:"gender"`
	DateOfBirth          *string `json:"date_of_birth,omitempty" db:"date_of_birth"` // YYYY-MM-DD
	Address              *string `json:"address,omitempty" db:"address"`
	EmergencyContactName *string `json:"emergency_contact_name,omitempty" db:"emergency_contact_name"`
	EmergencyContact     *string `json:"emergency_contact,omitempty" db:"emergency_contact"`
	GovernmentID         *string `json:"government_id,omitempty" db:"government_id"`
	PersonalTrainer      bool    `json:"personal_trainer" db:"personal_trainer"`

	Status             string     `json:"status" db:"status"`
	DateOfJoining      time.Time  `json:"date_of_joining" db:"date_of_joining"`
	CancellationReason *string    `json:"cancellation_reason" db:"cancellation_reason"`
	CancellationDate   *string    `json:"cancellation_date" db:"cancellation_date"` // YYYY-MM-DD
	ReactivationDate   *string    `json:"reactivation_date,omitempty" db:"reactivation_date"`
	PackageID          *string    `json:"package_id,omitempty" db:"package_id"`
	PackageName        *string    `json:"package_name,omitempty" db:"package_name"`
	PackageEndDate     *time.Time `json:"package_end_date,omitempty" db:"package_end_date"`
	Balance            float64    `json:"balance" db:"balance"`
	Rating             int        `json:"rating" db:"rating"`

	HealthConditions *string `json:"health_conditions,omitempty" db:"health_conditions"`
	Notes            *string `json:"notes,omitempty" db:"notes"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
