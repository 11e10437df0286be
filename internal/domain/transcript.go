package domain

import "time"

// Segment is a single caption cue from a video transcript.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Transcript is a stored video transcript. Text is the newline-joined cue
// text used for question answering; Segments keeps the timed form.
type Transcript struct {
	VideoID   string
	Title     string
	Text      string
	Segments  []Segment
	CreatedAt time.Time
}
