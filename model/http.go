package model

type ScaleResponse struct {
	Key   string   `json:"key"`
	Mode  string   `json:"mode"`
	Notes []string `json:"notes"`
}

type ChordResponse struct {
	Root    string   `json:"root"`
	Quality string   `json:"quality"`
	Notes   []string `json:"notes"`
}

type OptimizeRequestBody struct {
	Chords       [][]string `json:"chords"`
	Previous     Voicing    `json:"previous,omitempty"`
	TargetOctave int        `json:"target_octave,omitempty"`
}

type OptimizeResponse struct {
	Voicings []Voicing `json:"voicings"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
