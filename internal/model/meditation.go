package model

// ScriptSegment is one spoken passage of a meditation script, followed by a
// silent pause.
type ScriptSegment struct {
	Text         string
	PauseSeconds int
}

// MeditationScript is an ordered sequence of spoken segments.
type MeditationScript struct {
	ID              string
	Title           string
	DurationMinutes int
	Segments        []ScriptSegment
	CreatedAt       string
	UpdatedAt       string
}

// CreateMeditationScriptRequest carries the fields for a new script.
type CreateMeditationScriptRequest struct {
	Title           string
	DurationMinutes int
	Segments        []ScriptSegment
}

// UpdateMeditationScriptRequest is a partial update; only provided fields
// are written. Segments are replaced wholesale.
type UpdateMeditationScriptRequest struct {
	Title           Opt[string]
	DurationMinutes Opt[int]
	Segments        Opt[[]ScriptSegment]
}
