package model

// Progression is a named sequence of roman numerals in some key.
type Progression struct {
	Name     string   `json:"name"`
	Key      string   `json:"key"`
	Mode     string   `json:"mode"`
	Numerals []string `json:"numerals"`
}
