package model

// Lifecycle states of a scheduled workout.
const (
	WorkoutPlanned    = "planned"
	WorkoutInProgress = "in_progress"
	WorkoutCompleted  = "completed"
	WorkoutSkipped    = "skipped"
)

// WorkoutStatuses is the closed set accepted by the workout decoder.
var WorkoutStatuses = []string{
	WorkoutPlanned, WorkoutInProgress, WorkoutCompleted, WorkoutSkipped,
}

// Workout is one scheduled training day inside a mesocycle.
type Workout struct {
	ID          string
	Date        string // YYYY-MM-DD
	Mesocycle   int
	Week        int
	Status      string
	CompletedAt *string // nil until the workout is finished
	CreatedAt   string
	UpdatedAt   string
}

// CreateWorkoutRequest carries the fields for a new workout. New workouts
// start planned with no completion timestamp.
type CreateWorkoutRequest struct {
	Date      string
	Mesocycle int
	Week      int
}

// UpdateWorkoutRequest is a partial update; only provided fields are
// written.
type UpdateWorkoutRequest struct {
	Date        Opt[string]
	Mesocycle   Opt[int]
	Week        Opt[int]
	Status      Opt[string]
	CompletedAt Opt[string]
}
