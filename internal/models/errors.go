package models

import "errors"

var ErrNotFound = errors.New("requested resource not found")
var ErrForbidden = errors.New("user does not have permission to access this resource")
var ErrConflict = errors.New("resource conflict, item already exists")
var ErrInvalidToken = errors.New("token not found or expired")
var ErrInvalidCredentials = errors.New("invalid credentials") // email or password provided does not match database record

// ErrEmptyAddress indicates an address submission with no text left after
// trimming whitespace.
var ErrEmptyAddress = errors.New("address text must not be empty")

// ErrSequenceTooShort indicates that a trip sequence has fewer than the two
// stops required to compute mileage or save a trip.
var ErrSequenceTooShort = errors.New("trip sequence needs at least two addresses")

// ErrInvalidReorder indicates a sequence move whose indices fall outside the
// current draft.
var ErrInvalidReorder = errors.New("reorder indices out of range")

// ErrInvalidDatetime indicates a trip_datetime value outside the
// "2006-01-02T15:04:05" wire format.
var ErrInvalidDatetime = errors.New("invalid trip_datetime format")

// ErrNothingCalculated indicates that a draft is being saved before any
// mileage calculation has been run on it.
var ErrNothingCalculated = errors.New("no mileage calculation on record for this draft")

// ErrorResponse is the JSON body returned on any failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}
