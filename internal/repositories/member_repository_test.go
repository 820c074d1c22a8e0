package repositories

import (
	"regexp"
	"testing"
	"time"

	"gymdesk_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMemberRepo(t *testing.T) (MemberRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return NewMemberRepository(db), mock, func() { db.Close() }
}

var testMemberColumns = []string{
	"id", "gym_id", "full_name", "email", "phone", "gender", "date_of_birth", "address",
	"emergency_contact_name", "emergency_contact", "government_id", "personal_trainer",
	"status", "date_of_joining", "cancellation_reason", "cancellation_date", "reactivation_date",
	"package_id", "package_name", "package_end_date", "balance", "rating",
	"health_conditions", "notes", "created_at", "updated_at",
}

func fullMemberRow(id, gymID, status string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(testMemberColumns).AddRow(
		id, gymID, "Jane Doe", "jane@x.com", "+1 555 0100", "Female", nil, nil,
		nil, nil, nil, false,
		status, now, nil, nil, nil,
		nil, nil, nil, 0.0, 0,
		nil, nil, now, now,
	)
}

func TestGetByID_ScopedToGym(t *testing.T) {
	repo, mock, cleanup := setupMemberRepo(t)
	defer cleanup()

	// The id exists, but under another gym: the scoped query finds no
	// row and the caller sees a plain not-found.
	mock.ExpectQuery(`FROM members WHERE gym_id = \$1 AND id = \$2`).
		WithArgs("gym-2", "member-1").
		WillReturnRows(sqlmock.NewRows(testMemberColumns))

	_, err := repo.GetByID("gym-2", "member-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, cleanup := setupMemberRepo(t)
	defer cleanup()

	mock.ExpectQuery(`FROM members WHERE gym_id = \$1 AND id = \$2`).
		WithArgs("gym-1", "member-1").
		WillReturnRows(fullMemberRow("member-1", "gym-1", models.StatusActive))

	member, err := repo.GetByID("gym-1", "member-1")
	require.NoError(t, err)
	assert.Equal(t, "member-1", member.ID)
	assert.Equal(t, "gym-1", member.GymID)
	assert.Equal(t, models.StatusActive, member.Status)
	assert.Nil(t, member.CancellationReason)
}

func TestList_FiltersByGym(t *testing.T) {
	repo, mock, cleanup := setupMemberRepo(t)
	defer cleanup()

	mock.ExpectQuery(`FROM members WHERE gym_id = \$1 ORDER BY created_at DESC`).
		WithArgs("gym-1").
		WillReturnRows(fullMemberRow("member-1", "gym-1", models.StatusActive))

	members, err := repo.List("gym-1")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "gym-1", members[0].GymID)
}

func TestList_EmptyGymReturnsEmptySlice(t *testing.T) {
	repo, mock, cleanup := setupMemberRepo(t)
	defer cleanup()

	mock.ExpectQuery(`FROM members WHERE gym_id = \$1 ORDER BY created_at DESC`).
		WithArgs("gym-empty").
		WillReturnRows(sqlmock.NewRows(testMemberColumns))

	members, err := repo.List("gym-empty")
	require.NoError(t, err)
	assert.NotNil(t, members)
	assert.Len(t, members, 0)
}

func TestListByStatus_PassesStatus(t *testing.T) {
	repo, mock, cleanup := setupMemberRepo(t)
	defer cleanup()

	mock.ExpectQuery(`FROM members WHERE gym_id = \$1 AND status = \$2`).
		WithArgs("gym-1", models.StatusDormant).
		WillReturnRows(fullMemberRow("member-3", "gym-1", models.StatusDormant))

	members, err := repo.ListByStatus("gym-1", models.StatusDormant)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, models.StatusDormant, members[0].Status)
}

func TestInsert_AssignsIDAndForcesActive(t *testing.T) {
	repo, mock, cleanup := setupMemberRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO members`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	member := &models.Member{
		GymID:    "gym-1",
		FullName: "Jane Doe",
		Email:    "jane@x.com",
		Phone:    "+1 555 0100",
		Status:   "Cancelled", // caller-supplied status is ignored
	}

	err := repo.Insert(repoDB(repo), member)
	require.NoError(t, err)
	assert.NotEmpty(t, member.ID)
	assert.Equal(t, models.StatusActive, member.Status)
	assert.False(t, member.DateOfJoining.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

// repoDB pulls the underlying handle back out for executor-style calls.
func repoDB(r MemberRepository) SQLExecutor {
	return r.(*memberRepository).db
}

func TestMarkCancelled_MissingRowIsNotFound(t *testing.T) {
	repo, mock, cleanup := setupMemberRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`SET status = $1, cancellation_reason = $2, cancellation_date = $3, updated_at = $4`)).
		WithArgs(models.StatusCancelled, "Moved away", "2024-02-20", sqlmock.AnyArg(), "gym-1", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkCancelled(repoDB(repo), "gym-1", "ghost", "Moved away", "2024-02-20", time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkReactivated_ClearsCancellationColumns(t *testing.T) {
	repo, mock, cleanup := setupMemberRepo(t)
	defer cleanup()

	// The statement must null the cancellation columns in the same
	// write that restores Active.
	mock.ExpectExec(`SET status = \$1, cancellation_reason = NULL, cancellation_date = NULL,`).
		WithArgs(models.StatusActive, "2024-04-01", "2", sqlmock.AnyArg(), "gym-1", "member-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkReactivated(repoDB(repo), "gym-1", "member-1", "2", "2024-04-01", time.Now())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_ZeroRowsIsSuccess(t *testing.T) {
	repo, mock, cleanup := setupMemberRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM members WHERE gym_id = $1 AND id = $2`)).
		WithArgs("gym-1", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(repoDB(repo), "gym-1", "ghost"))
}

func TestSweepExpired_ReportsMovedCount(t *testing.T) {
	repo, mock, cleanup := setupMemberRepo(t)
	defer cleanup()

	mock.ExpectExec(`package_end_date IS NOT NULL AND package_end_date < \$4`).
		WithArgs(models.StatusDormant, sqlmock.AnyArg(), models.StatusActive, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 7))

	moved, err := repo.SweepExpired(repoDB(repo), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(7), moved)
}
