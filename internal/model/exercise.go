package model

// Muscle groups an exercise can target.
const (
	MuscleChest     = "chest"
	MuscleBack      = "back"
	MuscleShoulders = "shoulders"
	MuscleArms      = "arms"
	MuscleLegs      = "legs"
	MuscleCore      = "core"
)

// MuscleGroups is the closed set accepted by the exercise decoder.
var MuscleGroups = []string{
	MuscleChest, MuscleBack, MuscleShoulders, MuscleArms, MuscleLegs, MuscleCore,
}

// DefaultWeightIncrement is applied at create time when a request omits the
// increment. It is an encode-time default only: a stored document missing
// the field is invalid and rejected on read.
const DefaultWeightIncrement = 2.5

// Exercise is one movement in the lifting library.
type Exercise struct {
	ID              string
	Name            string
	MuscleGroup     string
	Equipment       *string // nil when no equipment (bodyweight) or never set
	RepRange        []float64
	WeightIncrement float64
	Notes           *string
	CreatedAt       string
	UpdatedAt       string
}

// CreateExerciseRequest carries the fields for a new exercise.
type CreateExerciseRequest struct {
	Name            string
	MuscleGroup     string
	Equipment       *string
	RepRange        []float64
	WeightIncrement *float64 // nil means DefaultWeightIncrement
	Notes           *string
}

// UpdateExerciseRequest is a partial update; only provided fields are
// written.
type UpdateExerciseRequest struct {
	Name            Opt[string]
	MuscleGroup     Opt[string]
	Equipment       Opt[string]
	RepRange        Opt[[]float64]
	WeightIncrement Opt[float64]
	Notes           Opt[string]
}
