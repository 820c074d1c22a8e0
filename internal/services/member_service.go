package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"gymdesk_backend/internal/models"
	"gymdesk_backend/internal/repositories"
	"gymdesk_backend/pkg/utils"
)

// --- Custom Service Errors for Members ---
var (
	ErrMemberNotFound    = errors.New("member not found")
	ErrMemberValidation  = errors.New("member data validation error")
	ErrInvalidTransition = errors.New("invalid membership state transition")
	ErrDateFormat        = errors.New("invalid date format, please use YYYY-MM-DD")
)

// --- Member DTOs ---

type CreateMemberRequest struct {
	FullName             string  `json:"full_name" binding:"required"`
	Email                string  `json:"email" binding:"required"`
	Phone                string  `json:"phone" binding:"required"`
	Gender               string  `json:"gender"`
	DateOfBirth          *string `json:"date_of_birth"` // Format YYYY-MM-DD
	Address              *string `json:"address"`
	EmergencyContactName *string `json:"emergency_contact_name"`
	EmergencyContact     *string `json:"emergency_contact"`
	GovernmentID         *string `json:"government_id"`
	PersonalTrainer      bool    `json:"personal_trainer"`
	PackageID            *string `json:"package_id"`
	PackageName          *string `json:"package_name"`
	HealthConditions     *string `json:"health_conditions"`
	Notes                *string `json:"notes"`
}

type CancelMembershipRequest struct {
	Reason        string `json:"reason" binding:"required"`
	EffectiveDate string `json:"effectiveDate" binding:"required"` // may be backdated or future-dated
}

type ReactivateRequest struct {
	PackageID string `json:"packageId" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
}

type UpdateRatingRequest struct {
	Rating *int `json:"rating" binding:"required"`
}

// --- MemberService Interface ---

// MemberService is the membership lifecycle engine: creation, the
// Cancel/Reactivate transitions, rating updates and deletion, all
// scoped to the caller's gym.
type MemberService interface {
	ListMembers(gymID string) ([]models.Member, error)
	CreateMember(gymID string, req CreateMemberRequest) (*models.Member, error)
	CancelMembership(gymID, memberID string, req CancelMembershipRequest) (*models.Member, error)
	ReactivateMembership(gymID, memberID string, req ReactivateRequest) (*models.Member, error)
	UpdateRating(gymID, memberID string, rating int) error
	DeleteMember(gymID, memberID string) error
}

type memberService struct {
	memberRepo repositories.MemberRepository
	db         *sql.DB
}

// NewMemberService creates a new instance of MemberService.
func NewMemberService(repo repositories.MemberRepository, db *sql.DB) MemberService {
	return &memberService{memberRepo: repo, db: db}
}

func parseISODate(value string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, ErrDateFormat
	}
	return d, nil
}

func (s *memberService) ListMembers(gymID string) ([]models.Member, error) {
	members, err := s.memberRepo.List(gymID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

func (s *memberService) CreateMember(gymID string, req CreateMemberRequest) (*models.Member, error) {
	if utils.IsEmpty(req.FullName) {
		return nil, fmt.Errorf("%w: full name cannot be empty", ErrMemberValidation)
	}
	if utils.IsEmpty(req.Phone) {
		return nil, fmt.Errorf("%w: phone cannot be empty", ErrMemberValidation)
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: email format is invalid", ErrMemberValidation)
	}
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		if _, err := parseISODate(*req.DateOfBirth); err != nil {
			return nil, err
		}
	}

	member := &models.Member{
		GymID:                gymID,
		FullName:             req.FullName,
		Email:                strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:                req.Phone,
		Gender:               req.Gender,
		DateOfBirth:          req.DateOfBirth,
		Address:              req.Address,
		EmergencyContactName: req.EmergencyContactName,
		EmergencyContact:     req.EmergencyContact,
		GovernmentID:         req.GovernmentID,
		PersonalTrainer:      req.PersonalTrainer,
		PackageID:            req.PackageID,
		PackageName:          req.PackageName,
		HealthConditions:     req.HealthConditions,
		Notes:                req.Notes,
	}

	// Insert assigns id/timestamps and forces status Active.
	if err := s.memberRepo.Insert(s.db, member); err != nil {
		return nil, fmt.Errorf("failed to create member in repository: %w", err)
	}
	return member, nil
}

// CancelMembership moves an Active member to Cancelled, recording the
// reason and effective date. Any other source state is rejected: the
// two cancellation fields must only ever exist alongside the Cancelled
// status.
func (s *memberService) CancelMembership(gymID, memberID string, req CancelMembershipRequest) (*models.Member, error) {
	if utils.IsEmpty(req.Reason) {
		return nil, fmt.Errorf("%w: cancellation reason cannot be empty", ErrMemberValidation)
	}
	if _, err := parseISODate(req.EffectiveDate); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.GetByID(gymID, memberID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to find member for cancellation: %w", err)
	}

	if member.Status != models.StatusActive {
		return nil, fmt.Errorf("%w: cannot cancel a %s membership", ErrInvalidTransition, member.Status)
	}

	if err := s.memberRepo.MarkCancelled(s.db, gymID, memberID, req.Reason, req.EffectiveDate, time.Now()); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to cancel membership: %w", err)
	}
	return s.memberRepo.GetByID(gymID, memberID)
}

// ReactivateMembership restores a Cancelled or Dormant member to
// Active and clears both cancellation fields. The package id is
// recorded as-is; validating it against the catalog and recomputing
// package_end_date belong to the package collaborator.
func (s *memberService) ReactivateMembership(gymID, memberID string, req ReactivateRequest) (*models.Member, error) {
	if utils.IsEmpty(req.PackageID) {
		return nil, fmt.Errorf("%w: package id cannot be empty", ErrMemberValidation)
	}
	if _, err := parseISODate(req.StartDate); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.GetByID(gymID, memberID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to find member for reactivation: %w", err)
	}

	if member.Status != models.StatusCancelled && member.Status != models.StatusDormant {
		return nil, fmt.Errorf("%w: cannot reactivate a %s membership", ErrInvalidTransition, member.Status)
	}

	if err := s.memberRepo.MarkReactivated(s.db, gymID, memberID, req.PackageID, req.StartDate, time.Now()); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to reactivate membership: %w", err)
	}
	return s.memberRepo.GetByID(gymID, memberID)
}

// UpdateRating sets the member's rating. Ratings live outside the
// lifecycle: any status accepts one, but the value must be 0 to 5.
func (s *memberService) UpdateRating(gymID, memberID string, rating int) error {
	if rating < 0 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5", ErrMemberValidation)
	}
	if err := s.memberRepo.UpdateRating(s.db, gymID, memberID, rating, time.Now()); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to update rating: %w", err)
	}
	return nil
}

// DeleteMember removes the record unconditionally. Deleting an id that
// does not exist under this gym succeeds; the repository treats zero
// affected rows as done.
func (s *memberService) DeleteMember(gymID, memberID string) error {
	if err := s.memberRepo.Delete(s.db, gymID, memberID); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}
