package trip

import (
	"context"
	"fmt"
	"time"

	"mileage-logbook/internal/models"
)

// datetimeLayout is the wire format for trip_datetime: local time, zero-padded
// seconds, no zone.
const datetimeLayout = "2006-01-02T15:04:05"

// ServiceInterface defines the trip operations exposed to handlers and to
// the planner.
type ServiceInterface interface {
	List(ctx context.Context, userID string, filter models.TripFilter) ([]*models.Trip, error)
	Create(ctx context.Context, userID string, req models.SaveTripRequest) (*models.Trip, error)
	UpdateDatetime(ctx context.Context, userID, tripID, datetime string) (*models.Trip, error)
	Delete(ctx context.Context, userID, tripID string) error
}

// Service implements the trip business logic.
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new trip service.
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// List returns the user's trip history through the given filter.
func (s *Service) List(ctx context.Context, userID string, filter models.TripFilter) ([]*models.Trip, error) {
	trips, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("service.List: %w", err)
	}
	return trips, nil
}

// Create persists a trip. The two-stop minimum is re-checked here even though
// the handler validates it, since the planner also calls this path.
func (s *Service) Create(ctx context.Context, userID string, req models.SaveTripRequest) (*models.Trip, error) {
	if len(req.TripData) < 2 {
		return nil, models.ErrSequenceTooShort
	}
	when, err := parseDatetime(req.TripDatetime)
	if err != nil {
		return nil, err
	}

	trip := &models.Trip{
		TripData:            req.TripData,
		TotalDistanceMiles:  req.TotalDistanceMiles,
		ReimbursementAmount: req.ReimbursementAmount,
		LegDistances:        req.LegDistances,
		TripDatetime:        when,
	}
	if trip.LegDistances == nil {
		trip.LegDistances = []string{}
	}

	saved, err := s.repo.Insert(ctx, userID, trip)
	if err != nil {
		return nil, fmt.Errorf("service.Create: %w", err)
	}
	return saved, nil
}

// UpdateDatetime changes when a saved trip took place.
func (s *Service) UpdateDatetime(ctx context.Context, userID, tripID, datetime string) (*models.Trip, error) {
	when, err := parseDatetime(datetime)
	if err != nil {
		return nil, err
	}
	t, err := s.repo.UpdateDatetime(ctx, userID, tripID, when)
	if err != nil {
		if err == models.ErrNotFound {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("service.UpdateDatetime: %w", err)
	}
	return t, nil
}

// Delete removes an owned trip.
func (s *Service) Delete(ctx context.Context, userID, tripID string) error {
	return s.repo.Delete(ctx, userID, tripID)
}

// parseDatetime validates the wire format before it reaches the database.
func parseDatetime(value string) (time.Time, error) {
	when, err := time.ParseInLocation(datetimeLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", models.ErrInvalidDatetime, value)
	}
	return when, nil
}
