package services

import (
	"testing"

	"gymdesk_backend/internal/models"
	"gymdesk_backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupNotificationService(t *testing.T) (NotificationService, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	svc := NewNotificationService(repositories.NewMemberRepository(db))
	return svc, mock, func() { db.Close() }
}

func TestNotificationSend_ExplicitRecipients(t *testing.T) {
	svc, _, cleanup := setupNotificationService(t)
	defer cleanup()

	sent, err := svc.Send("gym-1", models.NotificationRequest{
		Type:       "email",
		Title:      "Holiday hours",
		Message:    "We close early on Friday.",
		Recipients: []string{"a@x.com", "b@x.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
}

func TestNotificationSend_StatusRuleResolvesRecipients(t *testing.T) {
	svc, mock, cleanup := setupNotificationService(t)
	defer cleanup()

	mock.ExpectQuery(`FROM members WHERE gym_id = \$1 AND status = \$2`).
		WithArgs("gym-1", models.StatusDormant).
		WillReturnRows(memberRow(models.StatusDormant, nil, nil))

	sent, err := svc.Send("gym-1", models.NotificationRequest{
		Type:          "email",
		Title:         "We miss you",
		Message:       "Your membership has lapsed.",
		SelectionRule: &models.SelectionRule{Status: models.StatusDormant},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationSend_EmptyRuleMeansWholeGym(t *testing.T) {
	svc, mock, cleanup := setupNotificationService(t)
	defer cleanup()

	mock.ExpectQuery(`FROM members WHERE gym_id = \$1 ORDER BY created_at DESC`).
		WithArgs("gym-1").
		WillReturnRows(memberRow(models.StatusActive, nil, nil))

	sent, err := svc.Send("gym-1", models.NotificationRequest{
		Type:    "email",
		Title:   "Announcement",
		Message: "New equipment arrived.",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestNotificationSend_RequiresTitleAndMessage(t *testing.T) {
	svc, _, cleanup := setupNotificationService(t)
	defer cleanup()

	_, err := svc.Send("gym-1", models.NotificationRequest{
		Type:       "email",
		Title:      "",
		Message:    "body",
		Recipients: []string{"a@x.com"},
	})
	assert.ErrorIs(t, err, ErrNotificationValidation)
}
