package models

// DraftStop is one entry in an in-progress trip sequence. Key is a synthetic
// identity assigned at insertion time so reordering and removal never depend
// on address text being unique.
type DraftStop struct {
	Key         string `json:"key"`
	AddressID   string `json:"address_id"`
	AddressText string `json:"address_text"`
}

// Draft holds a user's in-progress trip sequence and the mileage result last
// computed for it. Calculated flips back to false on any sequence mutation,
// since the stored totals no longer describe the sequence.
type Draft struct {
	Stops               []DraftStop `json:"stops"`
	TotalDistanceMiles  float64     `json:"total_distance_miles"`
	ReimbursementAmount float64     `json:"reimbursement_amount"`
	LegDistances        []string    `json:"leg_distances"`
	Calculated          bool        `json:"calculated"`
}

// AddStopRequest appends an owned address to the draft sequence.
type AddStopRequest struct {
	AddressID string `json:"address_id" validate:"required"`
}

// ReorderRequest moves the stop at OldIndex to NewIndex, shifting the stops
// in between.
type ReorderRequest struct {
	OldIndex int `json:"oldIndex" validate:"gte=0"`
	NewIndex int `json:"newIndex" validate:"gte=0"`
}

// SaveDraftRequest turns a calculated draft into a persisted trip.
// TripTime is optional; a date without a time saves as midnight.
type SaveDraftRequest struct {
	TripDate string `json:"trip_date" validate:"required"`
	TripTime string `json:"trip_time"`
}
