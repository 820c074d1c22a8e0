package services

import (
	"testing"
	"time"

	"gymdesk_backend/internal/repositories"
	"gymdesk_backend/pkg/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthService(t *testing.T) (AuthService, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	svc := NewAuthService(repositories.NewAuthRepository(db), db)
	return svc, mock, func() { db.Close() }
}

func gymRow(email, passwordHash string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at", "updated_at"}).
		AddRow("gym-1", "Iron Works", email, passwordHash, now, now)
}

func TestSignup_ReturnsScopedToken(t *testing.T) {
	svc, mock, cleanup := setupAuthService(t)
	defer cleanup()

	mock.ExpectExec(`INSERT INTO gyms`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := svc.Signup(SignupRequest{
		GymName:  "Iron Works",
		Email:    "owner@ironworks.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Gym.ID)
	assert.NotEmpty(t, resp.Token)

	claims, err := utils.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Gym.ID, claims.GymID)
	assert.Equal(t, "owner@ironworks.com", claims.Email)
}

func TestLogin_ValidCredentials(t *testing.T) {
	svc, mock, cleanup := setupAuthService(t)
	defer cleanup()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse battery"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(`FROM gyms WHERE email = \$1`).
		WithArgs("owner@ironworks.com").
		WillReturnRows(gymRow("owner@ironworks.com", string(hash)))

	resp, err := svc.Login(LoginRequest{Email: "owner@ironworks.com", Password: "correct horse battery"})
	require.NoError(t, err)
	assert.Equal(t, "gym-1", resp.Gym.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mock, cleanup := setupAuthService(t)
	defer cleanup()

	hash, err := bcrypt.GenerateFromPassword([]byte("the real password"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(`FROM gyms WHERE email = \$1`).
		WithArgs("owner@ironworks.com").
		WillReturnRows(gymRow("owner@ironworks.com", string(hash)))

	_, err = svc.Login(LoginRequest{Email: "owner@ironworks.com", Password: "a guess"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmailLooksLikeBadPassword(t *testing.T) {
	svc, mock, cleanup := setupAuthService(t)
	defer cleanup()

	mock.ExpectQuery(`FROM gyms WHERE email = \$1`).
		WithArgs("nobody@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at", "updated_at"}))

	_, err := svc.Login(LoginRequest{Email: "nobody@x.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
