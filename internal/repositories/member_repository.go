package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gymdesk_backend/internal/models"
	"gymdesk_backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/lib/pq" // For pq.Error
)

// memberColumns is the select list shared by every member query.
// Order must match scanMember.
const memberColumns = `id, gym_id, full_name, email, phone, gender, date_of_birth, address,
	emergency_contact_name, emergency_contact, government_id, personal_trainer,
	status, date_of_joining, cancellation_reason, cancellation_date, reactivation_date,
	package_id, package_name, package_end_date, balance, rating,
	health_conditions, notes, created_at, updated_at`

// MemberRepository defines the tenant-scoped member store. Every
// method filters by gymID; a cross-tenant id behaves exactly like a
// missing one.
type MemberRepository interface {
	List(gymID string) ([]models.Member, error)
	ListByStatus(gymID, status string) ([]models.Member, error)
	GetByID(gymID, id string) (*models.Member, error)
	Insert(executor SQLExecutor, member *models.Member) error
	MarkCancelled(executor SQLExecutor, gymID, id, reason, cancellationDate string, now time.Time) error
	MarkReactivated(executor SQLExecutor, gymID, id, packageID, reactivationDate string, now time.Time) error
	UpdateRating(executor SQLExecutor, gymID, id string, rating int, now time.Time) error
	Delete(executor SQLExecutor, gymID, id string) error
	AdjustBalance(executor SQLExecutor, gymID, id string, delta float64, now time.Time) error
	SweepExpired(executor SQLExecutor, now time.Time) (int64, error)
}

type memberRepository struct {
	db *sql.DB
}

// NewMemberRepository creates a new instance of MemberRepository.
func NewMemberRepository(db *sql.DB) MemberRepository {
	return &memberRepository{db: db}
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanMember(s scanner) (*models.Member, error) {
	m := &models.Member{}
	var (
		dob, address, ecName, ec, govID     sql.NullString
		cancelReason, cancelDate, reactDate sql.NullString
		pkgID, pkgName                      sql.NullString
		pkgEnd                              sql.NullTime
		health, notes                       sql.NullString
	)

	err := s.Scan(
		&m.ID, &m.GymID, &m.FullName, &m.Email, &m.Phone, &m.Gender, &dob, &address,
		&ecName, &ec, &govID, &m.PersonalTrainer,
		&m.Status, &m.DateOfJoining, &cancelReason, &cancelDate, &reactDate,
		&pkgID, &pkgName, &pkgEnd, &m.Balance, &m.Rating,
		&health, &notes, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.DateOfBirth = utils.NullStringPtr(dob)
	m.Address = utils.NullStringPtr(address)
	m.EmergencyContactName = utils.NullStringPtr(ecName)
	m.EmergencyContact = utils.NullStringPtr(ec)
	m.GovernmentID = utils.NullStringPtr(govID)
	m.CancellationReason = utils.NullStringPtr(cancelReason)
	m.CancellationDate = utils.NullStringPtr(cancelDate)
	m.ReactivationDate = utils.NullStringPtr(reactDate)
	m.PackageID = utils.NullStringPtr(pkgID)
	m.PackageName = utils.NullStringPtr(pkgName)
	m.PackageEndDate = utils.NullTimePtr(pkgEnd)
	m.HealthConditions = utils.NullStringPtr(health)
	m.Notes = utils.NullStringPtr(notes)
	return m, nil
}

// List returns all members of a gym, newest created_at first.
func (r *memberRepository) List(gymID string) ([]models.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE gym_id = $1 ORDER BY created_at DESC`
	return r.queryMembers(query, gymID)
}

// ListByStatus returns a gym's members in one lifecycle state. Used by
// the notification selection rule.
func (r *memberRepository) ListByStatus(gymID, status string) ([]models.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE gym_id = $1 AND status = $2 ORDER BY created_at DESC`
	return r.queryMembers(query, gymID, status)
}

func (r *memberRepository) queryMembers(query string, args ...interface{}) ([]models.Member, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying members: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning member: %v", ErrDatabaseError, err)
		}
		members = append(members, *m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating member rows: %v", ErrDatabaseError, err)
	}
	return members, nil
}

// GetByID retrieves a single member under the caller's gym.
func (r *memberRepository) GetByID(gymID, id string) (*models.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE gym_id = $1 AND id = $2`
	m, err := scanMember(r.db.QueryRow(query, gymID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting member %s: %v", ErrDatabaseError, id, err)
	}
	return m, nil
}

// Insert creates a member record. The id, timestamps, status and
// date_of_joining are assigned here; the caller's values for those
// fields are ignored.
func (r *memberRepository) Insert(executor SQLExecutor, member *models.Member) error {
	query := `INSERT INTO members (id, gym_id, full_name, email, phone, gender, date_of_birth, address,
	            emergency_contact_name, emergency_contact, government_id, personal_trainer,
	            status, date_of_joining, package_id, package_name, package_end_date,
	            balance, rating, health_conditions, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`

	now := time.Now()
	member.ID = uuid.NewString()
	member.Status = models.StatusActive
	member.DateOfJoining = now
	member.CreatedAt = now
	member.UpdatedAt = now

	_, err := executor.Exec(query,
		member.ID, member.GymID, member.FullName, member.Email, member.Phone, member.Gender,
		utils.StringToNull(member.DateOfBirth), utils.StringToNull(member.Address),
		utils.StringToNull(member.EmergencyContactName), utils.StringToNull(member.EmergencyContact),
		utils.StringToNull(member.GovernmentID), member.PersonalTrainer,
		member.Status, member.DateOfJoining,
		utils.StringToNull(member.PackageID), utils.StringToNull(member.PackageName),
		utils.TimeToNull(member.PackageEndDate),
		member.Balance, member.Rating,
		utils.StringToNull(member.HealthConditions), utils.StringToNull(member.Notes),
		member.CreatedAt, member.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return fmt.Errorf("%w: creating member: %v", ErrDatabaseError, err)
	}
	return nil
}

// MarkCancelled writes the Cancelled state plus both cancellation
// fields in a single statement, keeping the pairing invariant.
func (r *memberRepository) MarkCancelled(executor SQLExecutor, gymID, id, reason, cancellationDate string, now time.Time) error {
	query := `UPDATE members
	          SET status = $1, cancellation_reason = $2, cancellation_date = $3, updated_at = $4
	          WHERE gym_id = $5 AND id = $6`
	return r.execExpectingRow(executor, query, models.StatusCancelled, reason, cancellationDate, now, gymID, id)
}

// MarkReactivated restores Active and clears both cancellation fields.
// package_end_date is deliberately untouched; package assignment is the
// catalog collaborator's job.
func (r *memberRepository) MarkReactivated(executor SQLExecutor, gymID, id, packageID, reactivationDate string, now time.Time) error {
	query := `UPDATE members
	          SET status = $1, cancellation_reason = NULL, cancellation_date = NULL,
	              reactivation_date = $2, package_id = $3, updated_at = $4
	          WHERE gym_id = $5 AND id = $6`
	return r.execExpectingRow(executor, query, models.StatusActive, reactivationDate, packageID, now, gymID, id)
}

// UpdateRating sets the rating without touching lifecycle state.
func (r *memberRepository) UpdateRating(executor SQLExecutor, gymID, id string, rating int, now time.Time) error {
	query := `UPDATE members SET rating = $1, updated_at = $2 WHERE gym_id = $3 AND id = $4`
	return r.execExpectingRow(executor, query, rating, now, gymID, id)
}

// AdjustBalance applies a signed delta to the member's balance.
func (r *memberRepository) AdjustBalance(executor SQLExecutor, gymID, id string, delta float64, now time.Time) error {
	query := `UPDATE members SET balance = balance + $1, updated_at = $2 WHERE gym_id = $3 AND id = $4`
	return r.execExpectingRow(executor, query, delta, now, gymID, id)
}

// Delete removes a member. Deleting an id that does not exist under
// this gym is success, not an error; callers cannot distinguish "never
// existed" from "already gone".
func (r *memberRepository) Delete(executor SQLExecutor, gymID, id string) error {
	query := `DELETE FROM members WHERE gym_id = $1 AND id = $2`
	if _, err := executor.Exec(query, gymID, id); err != nil {
		return fmt.Errorf("%w: deleting member %s: %v", ErrDatabaseError, id, err)
	}
	return nil
}

// SweepExpired moves Active members whose package has lapsed to
// Dormant, across all gyms. Returns the number of members moved.
func (r *memberRepository) SweepExpired(executor SQLExecutor, now time.Time) (int64, error) {
	query := `UPDATE members SET status = $1, updated_at = $2
	          WHERE status = $3 AND package_end_date IS NOT NULL AND package_end_date < $4`
	result, err := executor.Exec(query, models.StatusDormant, now, models.StatusActive, now)
	if err != nil {
		return 0, fmt.Errorf("%w: sweeping expired memberships: %v", ErrDatabaseError, err)
	}
	moved, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: getting rows affected for expiry sweep: %v", ErrDatabaseError, err)
	}
	return moved, nil
}

// execExpectingRow runs an update that must hit exactly one row and
// maps zero rows to ErrNotFound.
func (r *memberRepository) execExpectingRow(executor SQLExecutor, query string, args ...interface{}) error {
	result, err := executor.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("%w: updating member: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
