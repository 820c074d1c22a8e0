package services

import (
	"database/sql"
	"errors"
	"fmt"

	"gymdesk_backend/internal/models"
	"gymdesk_backend/internal/repositories"
	"gymdesk_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors for Auth ---
var (
	ErrGymNotFound        = errors.New("gym account not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already registered")
	ErrTokenGeneration    = errors.New("failed to generate token")
)

// --- Auth DTOs ---

type SignupRequest struct {
	GymName  string `json:"gym_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the session token whose gym_id claim scopes
// every subsequent request.
type AuthResponse struct {
	Gym   *models.Gym `json:"gym"`
	Token string      `json:"token"`
}

// --- AuthService Interface ---
type AuthService interface {
	Signup(req SignupRequest) (*AuthResponse, error)
	Login(req LoginRequest) (*AuthResponse, error)
}

type authService struct {
	authRepo repositories.AuthRepository
	db       *sql.DB
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(authRepo repositories.AuthRepository, db *sql.DB) AuthService {
	return &authService{authRepo: authRepo, db: db}
}

func (s *authService) Signup(req SignupRequest) (*AuthResponse, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	gym := &models.Gym{
		Name:  req.GymName,
		Email: req.Email,
	}
	if err := s.authRepo.CreateGym(s.db, gym, string(hashedPasswordBytes)); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create gym account: %w", err)
	}

	token, err := utils.GenerateSessionToken(gym.ID, gym.Email, gym.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	return &AuthResponse{Gym: gym, Token: token}, nil
}

func (s *authService) Login(req LoginRequest) (*AuthResponse, error) {
	gym, hash, err := s.authRepo.FindGymByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up gym account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateSessionToken(gym.ID, gym.Email, gym.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	return &AuthResponse{Gym: gym, Token: token}, nil
}
