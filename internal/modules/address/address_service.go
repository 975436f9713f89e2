package address

import (
	"context"
	"fmt"
	"strings"

	"mileage-logbook/internal/models"
)

// ServiceInterface defines the address operations exposed to handlers and to
// the trip planner.
type ServiceInterface interface {
	List(ctx context.Context, userID string) ([]*models.Address, error)
	Get(ctx context.Context, userID, addressID string) (*models.Address, error)
	Create(ctx context.Context, userID, text string) (*models.Address, error)
	Update(ctx context.Context, userID, addressID, text string) (*models.Address, error)
	Delete(ctx context.Context, userID, addressID string) error
}

// Service implements the address business logic.
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new address service.
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// List returns all addresses the user has saved.
func (s *Service) List(ctx context.Context, userID string) ([]*models.Address, error) {
	addresses, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.List: %w", err)
	}
	return addresses, nil
}

// Get returns a single owned address.
func (s *Service) Get(ctx context.Context, userID, addressID string) (*models.Address, error) {
	return s.repo.FindByID(ctx, userID, addressID)
}

// Create stores a trimmed address text for the user.
func (s *Service) Create(ctx context.Context, userID, text string) (*models.Address, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.ErrEmptyAddress
	}
	a, err := s.repo.Insert(ctx, userID, text)
	if err != nil {
		return nil, fmt.Errorf("service.Create: %w", err)
	}
	return a, nil
}

// Update rewrites an owned address's text.
func (s *Service) Update(ctx context.Context, userID, addressID, text string) (*models.Address, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.ErrEmptyAddress
	}
	a, err := s.repo.Update(ctx, userID, addressID, text)
	if err != nil {
		if err == models.ErrNotFound {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("service.Update: %w", err)
	}
	return a, nil
}

// Delete removes an owned address.
func (s *Service) Delete(ctx context.Context, userID, addressID string) error {
	return s.repo.Delete(ctx, userID, addressID)
}
