package planner

import (
	"context"
	"fmt"

	"mileage-logbook/internal/models"
	"mileage-logbook/internal/modules/mileage"

	"github.com/google/uuid"
)

// AddressLookupInterface is the slice of the address service the planner
// needs: resolving an owned address into text to snapshot.
type AddressLookupInterface interface {
	Get(ctx context.Context, userID, addressID string) (*models.Address, error)
}

// MileageServiceInterface computes total and per-leg distances for a
// sequence of address texts.
type MileageServiceInterface interface {
	Compute(ctx context.Context, addresses []string) (*models.MileageResult, error)
}

// TripSaverInterface persists a finished draft as a trip.
type TripSaverInterface interface {
	Create(ctx context.Context, userID string, req models.SaveTripRequest) (*models.Trip, error)
}

// ServiceInterface defines the draft-planner operations exposed to handlers.
type ServiceInterface interface {
	Get(ctx context.Context, userID string) models.Draft
	AddStop(ctx context.Context, userID, addressID string) (models.Draft, error)
	RemoveStop(ctx context.Context, userID, key string) (models.Draft, error)
	Reorder(ctx context.Context, userID string, oldIndex, newIndex int) (models.Draft, error)
	Clear(ctx context.Context, userID string)
	Calculate(ctx context.Context, userID string) (models.Draft, error)
	Save(ctx context.Context, userID string, req models.SaveDraftRequest) (*models.Trip, error)
}

// Service implements the planner logic over the draft store.
type Service struct {
	store     *Store
	addresses AddressLookupInterface
	mileage   MileageServiceInterface
	trips     TripSaverInterface
}

// NewService creates a new planner service.
func NewService(store *Store, addresses AddressLookupInterface, mileageSvc MileageServiceInterface, trips TripSaverInterface) *Service {
	return &Service{
		store:     store,
		addresses: addresses,
		mileage:   mileageSvc,
		trips:     trips,
	}
}

// Get returns the user's current draft.
func (s *Service) Get(ctx context.Context, userID string) models.Draft {
	return s.store.View(userID)
}

// AddStop appends an owned address to the draft, snapshotting its text and
// assigning it a stable key. The snapshot keeps the draft valid even if the
// address row is edited afterwards.
func (s *Service) AddStop(ctx context.Context, userID, addressID string) (models.Draft, error) {
	addr, err := s.addresses.Get(ctx, userID, addressID)
	if err != nil {
		return models.Draft{}, err
	}

	err = s.store.Mutate(userID, func(d *models.Draft) error {
		d.Stops = append(d.Stops, models.DraftStop{
			Key:         uuid.NewString(),
			AddressID:   addr.ID,
			AddressText: addr.AddressText,
		})
		invalidateCalculation(d)
		return nil
	})
	if err != nil {
		return models.Draft{}, err
	}
	return s.store.View(userID), nil
}

// RemoveStop deletes the stop with the given key.
func (s *Service) RemoveStop(ctx context.Context, userID, key string) (models.Draft, error) {
	err := s.store.Mutate(userID, func(d *models.Draft) error {
		for i, stop := range d.Stops {
			if stop.Key == key {
				d.Stops = append(d.Stops[:i], d.Stops[i+1:]...)
				invalidateCalculation(d)
				return nil
			}
		}
		return models.ErrNotFound
	})
	if err != nil {
		return models.Draft{}, err
	}
	return s.store.View(userID), nil
}

// Reorder moves the stop at oldIndex to newIndex as a splice: the stop is
// removed and reinserted, shifting everything in between. On [A,B,C],
// (0,2) yields [B,C,A].
func (s *Service) Reorder(ctx context.Context, userID string, oldIndex, newIndex int) (models.Draft, error) {
	err := s.store.Mutate(userID, func(d *models.Draft) error {
		n := len(d.Stops)
		if oldIndex < 0 || oldIndex >= n || newIndex < 0 || newIndex >= n {
			return fmt.Errorf("%w: index out of range", models.ErrInvalidReorder)
		}
		stop := d.Stops[oldIndex]
		d.Stops = append(d.Stops[:oldIndex], d.Stops[oldIndex+1:]...)
		d.Stops = append(d.Stops[:newIndex], append([]models.DraftStop{stop}, d.Stops[newIndex:]...)...)
		invalidateCalculation(d)
		return nil
	})
	if err != nil {
		return models.Draft{}, err
	}
	return s.store.View(userID), nil
}

// Clear resets the draft: stops and calculation both go.
func (s *Service) Clear(ctx context.Context, userID string) {
	s.store.Reset(userID)
}

// Calculate runs the mileage computation over the draft sequence and records
// the totals on the draft.
func (s *Service) Calculate(ctx context.Context, userID string) (models.Draft, error) {
	draft := s.store.View(userID)
	if len(draft.Stops) < 2 {
		return models.Draft{}, models.ErrSequenceTooShort
	}

	texts := make([]string, len(draft.Stops))
	for i, stop := range draft.Stops {
		texts[i] = stop.AddressText
	}

	result, err := s.mileage.Compute(ctx, texts)
	if err != nil {
		return models.Draft{}, fmt.Errorf("service.Calculate: %w", err)
	}

	totalMiles := mileage.ParseMiles(result.TotalDistance)
	err = s.store.Mutate(userID, func(d *models.Draft) error {
		d.TotalDistanceMiles = totalMiles
		d.ReimbursementAmount = mileage.Reimbursement(totalMiles)
		d.LegDistances = result.LegDistances
		d.Calculated = true
		return nil
	})
	if err != nil {
		return models.Draft{}, err
	}
	return s.store.View(userID), nil
}

// Save snapshots the calculated draft into a trip payload, persists it, and
// clears the draft.
func (s *Service) Save(ctx context.Context, userID string, req models.SaveDraftRequest) (*models.Trip, error) {
	draft := s.store.View(userID)
	if len(draft.Stops) < 2 {
		return nil, models.ErrSequenceTooShort
	}
	if !draft.Calculated {
		return nil, models.ErrNothingCalculated
	}
	datetime, ok := mileage.FormatTripDatetime(req.TripDate, req.TripTime)
	if !ok {
		return nil, fmt.Errorf("%w: trip_date is required", models.ErrInvalidDatetime)
	}

	stops := make([]models.TripStop, len(draft.Stops))
	for i, stop := range draft.Stops {
		stops[i] = models.TripStop{ID: stop.AddressID, AddressText: stop.AddressText}
	}

	saved, err := s.trips.Create(ctx, userID, models.SaveTripRequest{
		TripData:            stops,
		TotalDistanceMiles:  draft.TotalDistanceMiles,
		ReimbursementAmount: draft.ReimbursementAmount,
		LegDistances:        draft.LegDistances,
		TripDatetime:        datetime,
	})
	if err != nil {
		return nil, fmt.Errorf("service.Save: %w", err)
	}

	s.store.Reset(userID)
	return saved, nil
}

// invalidateCalculation drops recorded totals once the sequence they
// described has changed.
func invalidateCalculation(d *models.Draft) {
	d.TotalDistanceMiles = 0
	d.ReimbursementAmount = 0
	d.LegDistances = []string{}
	d.Calculated = false
}
