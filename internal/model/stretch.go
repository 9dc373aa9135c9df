package model

// Times of day a stretch routine is meant for.
const (
	SlotMorning     = "morning"
	SlotEvening     = "evening"
	SlotPostWorkout = "post_workout"
)

// RoutineSlots is the closed set accepted by the stretch-routine decoder.
var RoutineSlots = []string{SlotMorning, SlotEvening, SlotPostWorkout}

// Which side of the body a stretch works.
const (
	SideLeft  = "left"
	SideRight = "right"
	SideBoth  = "both"
)

// StretchSides is the closed set accepted for a stretch's side field.
var StretchSides = []string{SideLeft, SideRight, SideBoth}

// Stretch is one hold within a routine.
type Stretch struct {
	Name        string
	HoldSeconds int
	Side        string
}

// StretchRoutine is an ordered sequence of stretches for one slot of the
// day.
type StretchRoutine struct {
	ID        string
	Name      string
	Slot      string
	Stretches []Stretch
	CreatedAt string
	UpdatedAt string
}

// CreateStretchRoutineRequest carries the fields for a new routine.
type CreateStretchRoutineRequest struct {
	Name      string
	Slot      string
	Stretches []Stretch
}

// UpdateStretchRoutineRequest is a partial update; only provided fields are
// written. Stretches are replaced wholesale.
type UpdateStretchRoutineRequest struct {
	Name      Opt[string]
	Slot      Opt[string]
	Stretches Opt[[]Stretch]
}
