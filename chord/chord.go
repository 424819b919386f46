package chord

import (
	"log"
	"strings"

	"github.com/jsphweid/voiceleader/pitch"
	"github.com/jsphweid/voiceleader/scale"
)

type Quality string

const (
	Major           Quality = "major"
	Minor           Quality = "minor"
	Diminished      Quality = "diminished"
	Augmented       Quality = "augmented"
	Dominant7       Quality = "dominant7"
	Major7          Quality = "major7"
	Minor7          Quality = "minor7"
	HalfDiminished7 Quality = "half-diminished7"
	Diminished7     Quality = "diminished7"
	Sus2            Quality = "sus2"
	Sus4            Quality = "sus4"
)

// Semitone offsets stacked above the root for each quality.
var offsetStacks = map[Quality][]int{
	Major:           {0, 4, 7},
	Minor:           {0, 3, 7},
	Diminished:      {0, 3, 6},
	Augmented:       {0, 4, 8},
	Dominant7:       {0, 4, 7, 10},
	Major7:          {0, 4, 7, 11},
	Minor7:          {0, 3, 7, 10},
	HalfDiminished7: {0, 3, 6, 10},
	Diminished7:     {0, 3, 6, 9},
	Sus2:            {0, 2, 7},
	Sus4:            {0, 5, 7},
}

// Letter distance of each supported offset from the root letter, so
// chord tones get interval-correct spellings (C dominant7 ends on Bb,
// not A#). Offset 9 only occurs as a diminished seventh.
var offsetLetterSteps = map[int]int{
	0: 0, 2: 1, 3: 2, 4: 2, 5: 3, 6: 4, 7: 4, 8: 4, 9: 6, 10: 6, 11: 6,
}

// Notes expands a root and quality into spelled chord tones. Unknown
// qualities fall back to a major triad with a logged warning rather than
// failing.
func Notes(root string, quality Quality) ([]string, error) {
	offsets, ok := offsetStacks[quality]
	if !ok {
		log.Printf("WARN unknown chord quality %q, falling back to major", quality)
		offsets = offsetStacks[Major]
	}

	rootSemitone, err := pitch.NoteToSemitone(root)
	if err != nil {
		return nil, err
	}
	rootLetter, err := pitch.LetterIndex(root)
	if err != nil {
		return nil, err
	}

	notes := make([]string, 0, len(offsets))
	for _, offset := range offsets {
		notes = append(notes, pitch.Spell(rootLetter+offsetLetterSteps[offset], rootSemitone+offset))
	}
	return notes, nil
}

var numeralDegrees = map[string]int{
	"i": 0, "ii": 1, "iii": 2, "iv": 3, "v": 4, "vi": 5, "vii": 6,
}

// splitNumeral peels the quality suffixes off a roman numeral, so
// "vii°7" yields base "vii" with diminished and seventh set.
func splitNumeral(numeral string) (base string, diminished, augmented, seventh bool) {
	base = strings.TrimSpace(numeral)
	if strings.HasSuffix(base, "7") {
		seventh = true
		base = strings.TrimSuffix(base, "7")
	}
	if strings.HasSuffix(base, "°") {
		diminished = true
		base = strings.TrimSuffix(base, "°")
	}
	if strings.HasSuffix(base, "+") {
		augmented = true
		base = strings.TrimSuffix(base, "+")
	}
	return base, diminished, augmented, seventh
}

// RomanRoot resolves a roman numeral to the concrete root note of that
// scale degree. Unrecognized numerals pass through unchanged; the
// surrounding app has always leaned on that instead of validating.
func RomanRoot(numeral, key string, mode scale.Mode) (string, error) {
	base, _, _, _ := splitNumeral(numeral)
	degree, ok := numeralDegrees[strings.ToLower(base)]
	if !ok {
		return numeral, nil
	}
	notes, err := scale.Notes(key, mode)
	if err != nil {
		return "", err
	}
	return notes[degree], nil
}

// Diatonic triad qualities per scale degree.
var diatonicTriads = map[scale.Mode][7]Quality{
	scale.Major:         {Major, Minor, Minor, Major, Major, Minor, Diminished},
	scale.Minor:         {Minor, Diminished, Major, Minor, Minor, Major, Major},
	scale.HarmonicMinor: {Minor, Diminished, Augmented, Minor, Major, Major, Diminished},
	scale.MelodicMinor:  {Minor, Minor, Augmented, Major, Major, Diminished, Diminished},
}

// DegreeQuality derives a chord quality from the numeral's notation:
// ° means diminished (°7 fully diminished), + augmented, a trailing 7 a
// seventh chord whose flavor follows the numeral's case, with V7 as the
// dominant by convention. Otherwise lowercase reads minor and uppercase
// major; anything ambiguous falls back to the diatonic table for the
// mode.
func DegreeQuality(numeral string, mode scale.Mode) Quality {
	base, diminished, augmented, seventh := splitNumeral(numeral)
	switch {
	case diminished && seventh:
		return Diminished7
	case diminished:
		return Diminished
	case augmented:
		return Augmented
	}

	degree, known := numeralDegrees[strings.ToLower(base)]
	isLower := base == strings.ToLower(base)
	isUpper := base == strings.ToUpper(base)

	if seventh {
		switch {
		case isLower:
			return Minor7
		case isUpper && degree == 4:
			return Dominant7
		case isUpper:
			return Major7
		}
	}
	if isLower {
		return Minor
	}
	if isUpper && !seventh {
		return Major
	}

	if known {
		if triads, ok := diatonicTriads[scale.Normalize(mode)]; ok {
			return triads[degree]
		}
	}
	return Major
}

// NotesForDegree is the one-call path from numeral to chord tones.
func NotesForDegree(numeral, key string, mode scale.Mode) ([]string, error) {
	root, err := RomanRoot(numeral, key, mode)
	if err != nil {
		return nil, err
	}
	return Notes(root, DegreeQuality(numeral, mode))
}
