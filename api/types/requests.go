package types

// NoteRequest replaces the note of a playlist, track in a playlist or timestamp
type NoteRequest struct {
	Note string `json:"note" example:"great for late nights"`
}

// TimestampRequest adds an annotated interval to a track in a playlist
type TimestampRequest struct {
	Start string `json:"start" binding:"required" example:"00:10"`
	End   string `json:"end" binding:"required" example:"00:20"`
	Note  string `json:"note,omitempty" example:"guitar solo"`
}
