package services

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"gymdesk_backend/internal/models"
	"gymdesk_backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMemberService(t *testing.T) (MemberService, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	svc := NewMemberService(repositories.NewMemberRepository(db), db)
	return svc, mock, func() { db.Close() }
}

var memberColumns = []string{
	"id", "gym_id", "full_name", "email", "phone", "gender", "date_of_birth", "address",
	"emergency_contact_name", "emergency_contact", "government_id", "personal_trainer",
	"status", "date_of_joining", "cancellation_reason", "cancellation_date", "reactivation_date",
	"package_id", "package_name", "package_end_date", "balance", "rating",
	"health_conditions", "notes", "created_at", "updated_at",
}

// memberRow builds a full scan row for a member in the given state.
func memberRow(status string, reason, cancelDate interface{}) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(memberColumns).AddRow(
		"member-1", "gym-1", "Jane Doe", "jane@x.com", "+1 555 0100", "Female", "1990-01-01", nil,
		nil, nil, nil, false,
		status, now, reason, cancelDate, nil,
		nil, nil, nil, 0.0, 5,
		nil, nil, now, now,
	)
}

const getMemberQuery = `FROM members WHERE gym_id = \$1 AND id = \$2`

func TestCancelMembership_ActiveMember(t *testing.T) {
	svc, mock, cleanup := setupMemberService(t)
	defer cleanup()

	mock.ExpectQuery(getMemberQuery).
		WithArgs("gym-1", "member-1").
		WillReturnRows(memberRow(models.StatusActive, nil, nil))
	mock.ExpectExec(regexp.QuoteMeta(`SET status = $1, cancellation_reason = $2, cancellation_date = $3, updated_at = $4`)).
		WithArgs(models.StatusCancelled, "Financial constraints", "2024-03-01", sqlmock.AnyArg(), "gym-1", "member-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(getMemberQuery).
		WithArgs("gym-1", "member-1").
		WillReturnRows(memberRow(models.StatusCancelled, "Financial constraints", "2024-03-01"))

	member, err := svc.CancelMembership("gym-1", "member-1", CancelMembershipRequest{
		Reason:        "Financial constraints",
		EffectiveDate: "2024-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, member.Status)
	require.NotNil(t, member.CancellationReason)
	assert.Equal(t, "Financial constraints", *member.CancellationReason)
	require.NotNil(t, member.CancellationDate)
	assert.Equal(t, "2024-03-01", *member.CancellationDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelMembership_RejectsNonActiveSource(t *testing.T) {
	svc, mock, cleanup := setupMemberService(t)
	defer cleanup()

	mock.ExpectQuery(getMemberQuery).
		WithArgs("gym-1", "member-1").
		WillReturnRows(memberRow(models.StatusCancelled, "Moved away", "2024-01-15"))

	_, err := svc.CancelMembership("gym-1", "member-1", CancelMembershipRequest{
		Reason:        "Financial constraints",
		EffectiveDate: "2024-03-01",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelMembership_RequiresReason(t *testing.T) {
	svc, _, cleanup := setupMemberService(t)
	defer cleanup()

	_, err := svc.CancelMembership("gym-1", "member-1", CancelMembershipRequest{
		Reason:        "   ",
		EffectiveDate: "2024-03-01",
	})
	assert.ErrorIs(t, err, ErrMemberValidation)
}

func TestCancelMembership_RejectsBadDate(t *testing.T) {
	svc, _, cleanup := setupMemberService(t)
	defer cleanup()

	_, err := svc.CancelMembership("gym-1", "member-1", CancelMembershipRequest{
		Reason:        "Financial constraints",
		EffectiveDate: "March 1st",
	})
	assert.ErrorIs(t, err, ErrDateFormat)
}

func TestCancelMembership_MissingMember(t *testing.T) {
	svc, mock, cleanup := setupMemberService(t)
	defer cleanup()

	mock.ExpectQuery(getMemberQuery).
		WithArgs("gym-1", "ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := svc.CancelMembership("gym-1", "ghost", CancelMembershipRequest{
		Reason:        "Financial constraints",
		EffectiveDate: "2024-03-01",
	})
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestReactivate_ClearsCancellationState(t *testing.T) {
	svc, mock, cleanup := setupMemberService(t)
	defer cleanup()

	mock.ExpectQuery(getMemberQuery).
		WithArgs("gym-1", "member-1").
		WillReturnRows(memberRow(models.StatusCancelled, "Moved away", "2024-02-20"))
	mock.ExpectExec(regexp.QuoteMeta(`reactivation_date = $2, package_id = $3, updated_at = $4`)).
		WithArgs(models.StatusActive, "2024-04-01", "2", sqlmock.AnyArg(), "gym-1", "member-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(getMemberQuery).
		WithArgs("gym-1", "member-1").
		WillReturnRows(memberRow(models.StatusActive, nil, nil))

	member, err := svc.ReactivateMembership("gym-1", "member-1", ReactivateRequest{
		PackageID: "2",
		StartDate: "2024-04-01",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, member.Status)
	assert.Nil(t, member.CancellationReason)
	assert.Nil(t, member.CancellationDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReactivate_AllowsDormantSource(t *testing.T) {
	svc, mock, cleanup := setupMemberService(t)
	defer cleanup()

	mock.ExpectQuery(getMemberQuery).
		WithArgs("gym-1", "member-1").
		WillReturnRows(memberRow(models.StatusDormant, nil, nil))
	mock.ExpectExec(regexp.QuoteMeta(`reactivation_date = $2, package_id = $3, updated_at = $4`)).
		WithArgs(models.StatusActive, "2024-04-01", "3", sqlmock.AnyArg(), "gym-1", "member-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(getMemberQuery).
		WithArgs("gym-1", "member-1").
		WillReturnRows(memberRow(models.StatusActive, nil, nil))

	member, err := svc.ReactivateMembership("gym-1", "member-1", ReactivateRequest{
		PackageID: "3",
		StartDate: "2024-04-01",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, member.Status)
}

func TestReactivate_RejectsActiveSource(t *testing.T) {
	svc, mock, cleanup := setupMemberService(t)
	defer cleanup()

	mock.ExpectQuery(getMemberQuery).
		WithArgs("gym-1", "member-1").
		WillReturnRows(memberRow(models.StatusActive, nil, nil))

	_, err := svc.ReactivateMembership("gym-1", "member-1", ReactivateRequest{
		PackageID: "2",
		StartDate: "2024-04-01",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRating_Bounds(t *testing.T) {
	svc, _, cleanup := setupMemberService(t)
	defer cleanup()

	assert.ErrorIs(t, svc.UpdateRating("gym-1", "member-1", 6), ErrMemberValidation)
	assert.ErrorIs(t, svc.UpdateRating("gym-1", "member-1", -1), ErrMemberValidation)
}

func TestUpdateRating_Valid(t *testing.T) {
	svc, mock, cleanup := setupMemberService(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE members SET rating = $1, updated_at = $2 WHERE gym_id = $3 AND id = $4`)).
		WithArgs(4, sqlmock.AnyArg(), "gym-1", "member-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, svc.UpdateRating("gym-1", "member-1", 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRating_MissingMember(t *testing.T) {
	svc, mock, cleanup := setupMemberService(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE members SET rating = $1`)).
		WithArgs(4, sqlmock.AnyArg(), "gym-1", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, svc.UpdateRating("gym-1", "ghost", 4), ErrMemberNotFound)
}

func TestDeleteMember_MissingIDIsSuccess(t *testing.T) {
	svc, mock, cleanup := setupMemberService(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM members WHERE gym_id = $1 AND id = $2`)).
		WithArgs("gym-1", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, svc.DeleteMember("gym-1", "ghost"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMember_ForcesActiveAndAssignsID(t *testing.T) {
	svc, mock, cleanup := setupMemberService(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO members`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	member, err := svc.CreateMember("gym-1", CreateMemberRequest{
		FullName: "Jane Doe",
		Email:    "jane@x.com",
		Phone:    "+1 555 0100",
		Gender:   "Female",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, member.Status)
	assert.NotEmpty(t, member.ID)
	assert.Equal(t, "gym-1", member.GymID)
	assert.False(t, member.DateOfJoining.IsZero())
	assert.False(t, member.UpdatedAt.Before(member.CreatedAt))
}

func TestCreateMember_RejectsInvalidEmail(t *testing.T) {
	svc, _, cleanup := setupMemberService(t)
	defer cleanup()

	_, err := svc.CreateMember("gym-1", CreateMemberRequest{
		FullName: "Jane Doe",
		Email:    "not-an-email",
		Phone:    "+1 555 0100",
	})
	assert.ErrorIs(t, err, ErrMemberValidation)
}

func TestCancelThenReactivatePreservesPairing(t *testing.T) {
	// The cancellation fields and the Cancelled status move together in
	// one statement each way; a failed update leaves the member as-is.
	svc, mock, cleanup := setupMemberService(t)
	defer cleanup()

	mock.ExpectQuery(getMemberQuery).
		WithArgs("gym-1", "member-1").
		WillReturnRows(memberRow(models.StatusActive, nil, nil))
	mock.ExpectExec(regexp.QuoteMeta(`SET status = $1, cancellation_reason = $2`)).
		WillReturnError(errors.New("connection reset"))

	_, err := svc.CancelMembership("gym-1", "member-1", CancelMembershipRequest{
		Reason:        "Financial constraints",
		EffectiveDate: "2024-03-01",
	})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidTransition)
}
