package services

import (
	"database/sql"
	"time"

	"gymdesk_backend/internal/repositories"
	"gymdesk_backend/pkg/utils"
)

// ExpiryService is the scheduled sweep that moves Active members whose
// package_end_date has passed into Dormant (shown as "Expired" in the
// dashboard). It is the only producer of the Dormant state.
type ExpiryService struct {
	memberRepo repositories.MemberRepository
	db         *sql.DB
}

// NewExpiryService creates a new instance of ExpiryService.
func NewExpiryService(memberRepo repositories.MemberRepository, db *sql.DB) *ExpiryService {
	return &ExpiryService{memberRepo: memberRepo, db: db}
}

// Run executes one sweep. Call it from the cron schedule; it is a
// no-op when the backend is unconfigured (demo data never expires).
func (s *ExpiryService) Run() {
	if s.db == nil {
		return
	}
	moved, err := s.memberRepo.SweepExpired(s.db, time.Now())
	if err != nil {
		utils.LogError(err, "Membership expiry sweep failed")
		return
	}
	if moved > 0 {
		utils.LogInfo("Membership expiry sweep completed", map[string]interface{}{"moved_to_dormant": moved})
	}
}
