package model

// Voice is one sounding pitch within a voicing.
type Voice struct {
	Note   string  `json:"note"`
	Octave int     `json:"octave"`
	Pan    float64 `json:"pan,omitempty"`
}

// Voicing is an ordered list of voices, ascending by pitch.
type Voicing = []Voice

// Movement pairs a voice of the previous voicing with a voice of the
// next one, with the semitone distance between them.
type Movement struct {
	FromIndex int `json:"from_index"`
	ToIndex   int `json:"to_index"`
	Distance  int `json:"distance"`
}

type Assignment struct {
	Movements        []Movement `json:"movements"`
	TotalMovement    int        `json:"total_movement"`
	MaxLeap          int        `json:"max_leap"`
	TopVoiceMovement int        `json:"top_voice_movement"`
}
