package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mileage-logbook/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// ServiceInterface defines the account operations exposed to handlers.
type ServiceInterface interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
}

// Service implements registration and login, minting the bearer tokens the
// rest of the API verifies.
type Service struct {
	repo      RepositoryInterface
	jwtSecret string
	audience  string
}

// NewService creates a new user service.
func NewService(repo RepositoryInterface, jwtSecret, audience string) *Service {
	return &Service{
		repo:      repo,
		jwtSecret: jwtSecret,
		audience:  audience,
	}
}

// Register creates an account and signs the caller straight in.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("service.Register: hash password: %w", err)
	}

	u, err := s.repo.Insert(ctx, strings.ToLower(strings.TrimSpace(req.Email)), string(hash))
	if err != nil {
		if err == models.ErrConflict {
			return nil, models.ErrConflict
		}
		return nil, fmt.Errorf("service.Register: %w", err)
	}

	return s.respond(u)
}

// Login verifies the credentials and mints a token. A missing account and a
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	u, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if err == models.ErrNotFound {
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("service.Login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, models.ErrInvalidCredentials
	}

	return s.respond(u)
}

func (s *Service) respond(u *models.User) (*models.AuthResponse, error) {
	token, err := s.mintToken(u.ID)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: u}, nil
}

// mintToken signs an HS256 token carrying the subject and audience the JWT
// middleware checks on every protected request.
func (s *Service) mintToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Audience:  jwt.ClaimStrings{s.audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("service.mintToken: %w", err)
	}
	return signed, nil
}
