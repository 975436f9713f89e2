package mileage

import (
	"context"
	"fmt"

	"mileage-logbook/internal/models"
	"mileage-logbook/pkg/distance"
)

// ServiceInterface defines the mileage computation exposed to handlers and
// to the trip planner.
type ServiceInterface interface {
	Compute(ctx context.Context, addresses []string) (*models.MileageResult, error)
}

// service sums routed distances over consecutive address pairs.
type service struct {
	distance distance.ClientInterface
}

// NewService creates a mileage service backed by the given distance client.
func NewService(dist distance.ClientInterface) ServiceInterface {
	return &service{distance: dist}
}

// Compute resolves one leg per consecutive address pair and sums the results.
// A leg the upstream can't resolve is reported as an error string in its
// slot while the remaining legs still contribute to the total; only a
// transport-level failure aborts the computation.
func (s *service) Compute(ctx context.Context, addresses []string) (*models.MileageResult, error) {
	if len(addresses) < 2 {
		return nil, models.ErrSequenceTooShort
	}

	totalMeters := 0
	legs := make([]string, 0, len(addresses)-1)
	for i := 0; i < len(addresses)-1; i++ {
		leg, err := s.distance.Leg(ctx, addresses[i], addresses[i+1])
		if err != nil {
			return nil, fmt.Errorf("service.Compute: leg %d: %w", i, err)
		}
		if leg.Status != distance.StatusOK {
			legs = append(legs, "Error: "+leg.Status)
			continue
		}
		totalMeters += leg.Meters
		legs = append(legs, FormatMeters(leg.Meters))
	}

	return &models.MileageResult{
		Status:        distance.StatusOK,
		TotalDistance: FormatMeters(totalMeters),
		LegDistances:  legs,
	}, nil
}
