package scale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/voiceleader/pitch"
)

type Mode string

const (
	Major         Mode = "major"
	Minor         Mode = "minor"
	HarmonicMinor Mode = "harmonic-minor"
	MelodicMinor  Mode = "melodic-minor"
)

var ErrUnknownMode = errors.New("unknown mode")

// Semitone deltas between consecutive scale degrees.
var intervalPatterns = map[Mode][7]int{
	Major:         {2, 2, 1, 2, 2, 2, 1},
	Minor:         {2, 1, 2, 2, 1, 2, 2},
	HarmonicMinor: {2, 1, 2, 2, 1, 3, 1},
	MelodicMinor:  {2, 1, 2, 2, 2, 2, 1},
}

// Normalize maps mode-name variants onto the canonical Mode values. An
// empty mode means major.
func Normalize(mode Mode) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(string(mode)))) {
	case "", Major:
		return Major
	case Minor, "natural-minor", "natural minor", "aeolian":
		return Minor
	case HarmonicMinor, "harmonic minor":
		return HarmonicMinor
	case MelodicMinor, "melodic minor":
		return MelodicMinor
	}
	return Mode(strings.ToLower(strings.TrimSpace(string(mode))))
}

// Notes builds the 7-note scale for a key. Each degree takes the next
// letter name, so spellings follow the key signature and no letter
// repeats (F# major gets E#, C minor gets Eb).
func Notes(key string, mode Mode) ([]string, error) {
	pattern, ok := intervalPatterns[Normalize(mode)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	semitone, err := pitch.NoteToSemitone(key)
	if err != nil {
		return nil, err
	}
	letterIdx, err := pitch.LetterIndex(key)
	if err != nil {
		return nil, err
	}

	notes := make([]string, 7)
	for i := 0; i < 7; i++ {
		notes[i] = pitch.Spell(letterIdx+i, semitone)
		semitone = (semitone + pattern[i]) % 12
	}
	return notes, nil
}

type Signature struct {
	SharpCount    int      `json:"sharp_count"`
	FlatCount     int      `json:"flat_count"`
	Accidentals   []string `json:"accidentals"`
	Description   string   `json:"description"`
	RelativeMajor string   `json:"relative_major,omitempty"`
}

// Accidentals accumulate in fifths order.
var sharpOrder = [7]string{"F#", "C#", "G#", "D#", "A#", "E#", "B#"}
var flatOrder = [7]string{"Bb", "Eb", "Ab", "Db", "Gb", "Cb", "Fb"}

// Position of each major tonic on the line of fifths, C = 0. Positive
// counts sharps, negative counts flats. Spelling matters here: F# major
// has 6 sharps while Gb major has 6 flats.
var majorFifths = map[string]int{
	"C": 0,
	"G": 1, "D": 2, "A": 3, "E": 4, "B": 5, "F#": 6, "C#": 7,
	"F": -1, "Bb": -2, "Eb": -3, "Ab": -4, "Db": -5, "Gb": -6, "Cb": -7,
}

func normalizeName(key string) string {
	n := strings.TrimSpace(key)
	if n == "" {
		return n
	}
	res := strings.ToUpper(n[:1])
	if len(n) > 1 {
		accidental := n[1:]
		if accidental == "B" {
			accidental = "b"
		}
		res += accidental
	}
	return res
}

// KeySignature reports the sharps or flats of a key. Minor keys borrow
// the signature of their relative major, which is also reported. The
// second return value is false for keys with no standard signature.
func KeySignature(key string, mode Mode) (Signature, bool) {
	var sig Signature

	name := normalizeName(key)
	mode = Normalize(mode)
	if mode != Major {
		relative, err := relativeMajor(name)
		if err != nil {
			return sig, false
		}
		sig.RelativeMajor = relative
		name = relative
	}

	fifths, ok := majorFifths[name]
	if !ok {
		return Signature{}, false
	}
	switch {
	case fifths > 0:
		sig.SharpCount = fifths
		sig.Accidentals = append(sig.Accidentals, sharpOrder[:fifths]...)
		sig.Description = fmt.Sprintf("%v sharp(s)", fifths)
	case fifths < 0:
		sig.FlatCount = -fifths
		sig.Accidentals = append(sig.Accidentals, flatOrder[:-fifths]...)
		sig.Description = fmt.Sprintf("%v flat(s)", -fifths)
	default:
		sig.Description = "no sharps or flats"
	}
	return sig, true
}

// relativeMajor is three semitones up and two letters along, so the pair
// shares a signature (A minor -> C, Eb minor -> Gb).
func relativeMajor(key string) (string, error) {
	semitone, err := pitch.NoteToSemitone(key)
	if err != nil {
		return "", err
	}
	letterIdx, err := pitch.LetterIndex(key)
	if err != nil {
		return "", err
	}
	return pitch.Spell(letterIdx+2, semitone+3), nil
}

type KeyRef struct {
	Key  string `json:"key"`
	Mode Mode   `json:"mode"`
}

type Related struct {
	Dominant    KeyRef `json:"dominant"`
	Subdominant KeyRef `json:"subdominant"`
	Relative    KeyRef `json:"relative"`
}

// RelatedKeys gives the circle-of-fifths neighbors and the relative
// major/minor pairing. Invalid keys report false instead of an error.
func RelatedKeys(key string, mode Mode) (Related, bool) {
	mode = Normalize(mode)
	if _, ok := intervalPatterns[mode]; !ok {
		return Related{}, false
	}
	semitone, err := pitch.NoteToSemitone(key)
	if err != nil {
		return Related{}, false
	}
	letterIdx, err := pitch.LetterIndex(key)
	if err != nil {
		return Related{}, false
	}

	var related Related
	related.Dominant = KeyRef{Key: pitch.Spell(letterIdx+4, semitone+7), Mode: mode}
	related.Subdominant = KeyRef{Key: pitch.Spell(letterIdx+3, semitone+5), Mode: mode}
	if mode == Major {
		related.Relative = KeyRef{Key: pitch.Spell(letterIdx+5, semitone+9), Mode: Minor}
	} else {
		related.Relative = KeyRef{Key: pitch.Spell(letterIdx+2, semitone+3), Mode: Major}
	}
	return related, true
}

// Major tonics a perfect fifth apart, clockwise.
var circleOfFifths = [12]string{"C", "G", "D", "A", "E", "B", "F#", "Db", "Ab", "Eb", "Bb", "F"}

// CircleOfFifthsPosition locates a tonic on the circle, normalizing case
// and enharmonic spelling (Gb finds the F# slot). Returns -1 when the
// tonic is not a valid note.
func CircleOfFifthsPosition(key string) int {
	semitone, err := pitch.NoteToSemitone(key)
	if err != nil {
		return -1
	}
	for i, tonic := range circleOfFifths {
		entry, _ := pitch.NoteToSemitone(tonic)
		if entry == semitone {
			return i
		}
	}
	return -1
}
