package trip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mileage-logbook/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for the trip repository.
type RepositoryInterface interface {
	List(ctx context.Context, userID string, filter models.TripFilter) ([]*models.Trip, error)
	Insert(ctx context.Context, userID string, trip *models.Trip) (*models.Trip, error)
	UpdateDatetime(ctx context.Context, userID, tripID string, when time.Time) (*models.Trip, error)
	Delete(ctx context.Context, userID, tripID string) error
}

// Repository implements the RepositoryInterface.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new trip repository.
func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

// sortColumns whitelists what the history endpoint may order by. Interpolating
// anything outside this map into the query would be an injection hole.
var sortColumns = map[string]string{
	models.SortByTripDatetime:  "trip_datetime",
	models.SortByCreatedAt:     "created_at",
	models.SortByTotalDistance: "total_distance_miles",
	models.SortByReimbursement: "reimbursement_amount",
}

func (r *Repository) scanTrip(row pgx.Row) (*models.Trip, error) {
	var t models.Trip
	var tripData, legDistances []byte
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&tripData,
		&t.TotalDistanceMiles,
		&t.ReimbursementAmount,
		&legDistances,
		&t.TripDatetime,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan trip: %w", err)
	}
	if err := json.Unmarshal(tripData, &t.TripData); err != nil {
		return nil, fmt.Errorf("failed to decode trip_data: %w", err)
	}
	if err := json.Unmarshal(legDistances, &t.LegDistances); err != nil {
		return nil, fmt.Errorf("failed to decode leg_distances: %w", err)
	}
	return &t, nil
}

// List returns the user's trip history, bounded and ordered by the filter.
// Only provided filter fields make it into the query.
func (r *Repository) List(ctx context.Context, userID string, filter models.TripFilter) ([]*models.Trip, error) {
	query := `
		SELECT id, user_id, trip_data, total_distance_miles, reimbursement_amount, leg_distances, trip_datetime, created_at
		FROM trips
		WHERE user_id = $1`
	args := []interface{}{userID}

	if filter.StartDate != "" {
		start, err := parseFilterDate(filter.StartDate)
		if err != nil {
			return nil, err
		}
		args = append(args, start)
		query += fmt.Sprintf(" AND trip_datetime >= $%d", len(args))
	}
	if filter.EndDate != "" {
		end, err := parseFilterDate(filter.EndDate)
		if err != nil {
			return nil, err
		}
		args = append(args, end)
		query += fmt.Sprintf(" AND trip_datetime <= $%d", len(args))
	}

	col, ok := sortColumns[filter.SortBy]
	if !ok {
		col = "trip_datetime"
	}
	dir := "DESC"
	if filter.SortOrder == "asc" {
		dir = "ASC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", col, dir)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("repository.List.Query: %w", err)
	}
	defer rows.Close()

	var trips []*models.Trip
	for rows.Next() {
		t, err := r.scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repository.List.scanTrip: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.List.rows: %w", err)
	}
	return trips, nil
}

// Insert persists a calculated trip for the user.
func (r *Repository) Insert(ctx context.Context, userID string, trip *models.Trip) (*models.Trip, error) {
	tripData, err := json.Marshal(trip.TripData)
	if err != nil {
		return nil, fmt.Errorf("repository.Insert: encode trip_data: %w", err)
	}
	legDistances, err := json.Marshal(trip.LegDistances)
	if err != nil {
		return nil, fmt.Errorf("repository.Insert: encode leg_distances: %w", err)
	}

	const query = `
		INSERT INTO trips (user_id, trip_data, total_distance_miles, reimbursement_amount, leg_distances, trip_datetime)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, trip_data, total_distance_miles, reimbursement_amount, leg_distances, trip_datetime, created_at`
	saved, err := r.scanTrip(r.db.QueryRow(ctx, query,
		userID, tripData,
		trip.TotalDistanceMiles, trip.ReimbursementAmount,
		legDistances, trip.TripDatetime,
	))
	if err != nil {
		return nil, fmt.Errorf("repository.Insert: %w", err)
	}
	return saved, nil
}

// parseFilterDate accepts the date-only bound the history endpoint takes;
// a bare date means midnight, same as comparing against a date literal.
func parseFilterDate(value string) (time.Time, error) {
	when, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", models.ErrInvalidDatetime, value)
	}
	return when, nil
}

// UpdateDatetime rewrites trip_datetime, the only mutable field of a saved
// trip. ErrNotFound covers both an absent row and one owned by someone else.
func (r *Repository) UpdateDatetime(ctx context.Context, userID, tripID string, when time.Time) (*models.Trip, error) {
	const query = `
		UPDATE trips
		SET trip_datetime = $1
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, trip_data, total_distance_miles, reimbursement_amount, leg_distances, trip_datetime, created_at`
	t, err := r.scanTrip(r.db.QueryRow(ctx, query, when, tripID, userID))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.UpdateDatetime: %w", err)
	}
	return t, nil
}

// Delete removes an owned trip. Another user's row is left untouched.
func (r *Repository) Delete(ctx context.Context, userID, tripID string) error {
	const query = `DELETE FROM trips WHERE id = $1 AND user_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, tripID, userID)
	if err != nil {
		return fmt.Errorf("repository.Delete: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
