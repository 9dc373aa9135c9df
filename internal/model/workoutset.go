package model

// Lifecycle states of a single set.
const (
	SetPending   = "pending"
	SetCompleted = "completed"
	SetSkipped   = "skipped"
)

// SetStatuses is the closed set accepted by the workout-set decoder.
var SetStatuses = []string{SetPending, SetCompleted, SetSkipped}

// WorkoutSet is one prescribed set of one exercise within a workout.
// Actual reps and weight stay null until the set is performed.
type WorkoutSet struct {
	ID           string
	WorkoutID    string
	ExerciseID   string
	SetNumber    int
	TargetReps   int
	TargetWeight float64
	ActualReps   *int
	ActualWeight *float64
	Status       string
	CreatedAt    string
	UpdatedAt    string
}

// CreateWorkoutSetRequest carries the fields for a new set. New sets start
// pending with null actuals.
type CreateWorkoutSetRequest struct {
	WorkoutID    string
	ExerciseID   string
	SetNumber    int
	TargetReps   int
	TargetWeight float64
}

// UpdateWorkoutSetRequest is a partial update; only provided fields are
// written.
type UpdateWorkoutSetRequest struct {
	SetNumber    Opt[int]
	TargetReps   Opt[int]
	TargetWeight Opt[float64]
	ActualReps   Opt[int]
	ActualWeight Opt[float64]
	Status       Opt[string]
}

// CompletedSetRow is one row of the completed-set history join: a set that
// was actually performed, annotated with its parent workout's date,
// mesocycle, and completion timestamp.
type CompletedSetRow struct {
	Set         WorkoutSet
	WorkoutDate string
	Mesocycle   int
	CompletedAt *string // parent's completedAt; may be absent in edge cases
}
