package models

// MileageRequest is the input to the mileage computation endpoint: each
// consecutive pair of addresses forms one leg.
type MileageRequest struct {
	Addresses []string `json:"addresses" validate:"required,min=2,dive,required"`
}

// MileageResult relays the summed trip distance plus the per-leg breakdown.
// A leg that failed upstream is reported as an error string in LegDistances
// rather than failing the whole computation.
type MileageResult struct {
	Status        string   `json:"status"`
	TotalDistance string   `json:"totalDistance"`
	LegDistances  []string `json:"legDistances"`
}

// PublicConfig is served unauthenticated so browser clients can bootstrap
// their session against the hosted auth backend.
type PublicConfig struct {
	SupabaseURL     string `json:"supabaseUrl"`
	SupabaseAnonKey string `json:"supabaseAnonKey"`
}
