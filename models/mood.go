package models

// RecordMoodRequest is the payload for recording a mood
type RecordMoodRequest struct {
	Mood string `json:"mood"`
}

// MoodView is the per-entry shape returned by the mood endpoints,
// keyed by entry id.
type MoodView struct {
	Mood    string `json:"mood"`
	Created string `json:"created"`
}

// LegacyMoodView mirrors the pre-auth API's response shape, which also
// exposed the row's user_id.
type LegacyMoodView struct {
	UserID  int    `json:"user_id"`
	Mood    string `json:"mood"`
	Created string `json:"created"`
}
