package services

import (
	"testing"

	"gymdesk_backend/internal/models"
	"gymdesk_backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestExpirySweep_MovesLapsedMembers(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`package_end_date IS NOT NULL AND package_end_date < \$4`).
		WithArgs(models.StatusDormant, sqlmock.AnyArg(), models.StatusActive, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	svc := NewExpiryService(repositories.NewMemberRepository(db), db)
	svc.Run()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpirySweep_NoOpWithoutBackend(t *testing.T) {
	// In demo mode there is no pool at all; Run must not panic.
	svc := NewExpiryService(repositories.NewMemberRepository(nil), nil)
	svc.Run()
}
