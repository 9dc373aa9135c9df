package model

// CyclingActivity is one recorded ride. Activities are written by the
// external ride-sync service; this layer reads them and never writes, so
// there are no create/update request types.
type CyclingActivity struct {
	ID              string
	StartedAt       string
	DurationSeconds int
	DistanceKm      float64
	AvgPower        *float64 // nil when the ride had no power meter
	EF              *float64 // efficiency factor; nil when no HR data
	TSS             *float64
	Source          string
	CreatedAt       string
	UpdatedAt       string
}
