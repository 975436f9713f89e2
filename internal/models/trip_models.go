package models

import "time"

// Sort columns accepted by the trip history endpoint. Anything else falls
// back to SortByTripDatetime.
const (
	SortByTripDatetime  = "trip_datetime"
	SortByCreatedAt     = "created_at"
	SortByTotalDistance = "total_distance_miles"
	SortByReimbursement = "reimbursement_amount"
)

// TripStop is a point-in-time snapshot of an address within a saved trip.
// Snapshots keep the trip record stable even if the address is later edited
// or deleted.
type TripStop struct {
	ID          string `json:"id"`
	AddressText string `json:"address_text"`
}

// Trip is a persisted, already-calculated trip.
type Trip struct {
	ID                  string     `json:"id"`
	UserID              string     `json:"user_id"`
	TripData            []TripStop `json:"trip_data"`
	TotalDistanceMiles  float64    `json:"total_distance_miles"`
	ReimbursementAmount float64    `json:"reimbursement_amount"`
	LegDistances        []string   `json:"leg_distances"`
	TripDatetime        time.Time  `json:"trip_datetime"`
	CreatedAt           time.Time  `json:"created_at"`
}

// SaveTripRequest represents the data needed to persist a trip.
type SaveTripRequest struct {
	TripData            []TripStop `json:"trip_data" validate:"required,min=2"`
	TotalDistanceMiles  float64    `json:"total_distance_miles" validate:"gte=0"`
	ReimbursementAmount float64    `json:"reimbursement_amount" validate:"gte=0"`
	LegDistances        []string   `json:"leg_distances"`
	TripDatetime        string     `json:"trip_datetime" validate:"required"`
}

// UpdateTripRequest carries the only mutable field of a saved trip.
type UpdateTripRequest struct {
	TripDatetime string `json:"trip_datetime" validate:"required"`
}

// TripFilter narrows and orders the trip history listing. Zero-value fields
// are left out of the query entirely.
type TripFilter struct {
	StartDate string
	EndDate   string
	SortBy    string
	SortOrder string
}
