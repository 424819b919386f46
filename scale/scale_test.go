package scale

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleNotes(t *testing.T) {
	tests := []struct {
		key      string
		mode     Mode
		expected []string
	}{
		{key: "C", mode: Major, expected: []string{"C", "D", "E", "F", "G", "A", "B"}},
		{key: "G", mode: Major, expected: []string{"G", "A", "B", "C", "D", "E", "F#"}},
		{key: "F", mode: Major, expected: []string{"F", "G", "A", "Bb", "C", "D", "E"}},
		{key: "F#", mode: Major, expected: []string{"F#", "G#", "A#", "B", "C#", "D#", "E#"}},
		{key: "Eb", mode: Major, expected: []string{"Eb", "F", "G", "Ab", "Bb", "C", "D"}},
		{key: "A", mode: Minor, expected: []string{"A", "B", "C", "D", "E", "F", "G"}},
		{key: "C", mode: Minor, expected: []string{"C", "D", "Eb", "F", "G", "Ab", "Bb"}},
		{key: "A", mode: HarmonicMinor, expected: []string{"A", "B", "C", "D", "E", "F", "G#"}},
		{key: "C", mode: MelodicMinor, expected: []string{"C", "D", "Eb", "F", "G", "A", "B"}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v %v", tt.key, tt.mode), func(t *testing.T) {
			notes, err := Notes(tt.key, tt.mode)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, notes)
		})
	}
}

func TestScaleLettersNeverRepeat(t *testing.T) {
	keys := []string{"C", "G", "D", "A", "E", "B", "F#", "Db", "Ab", "Eb", "Bb", "F"}
	modes := []Mode{Major, Minor, HarmonicMinor, MelodicMinor}
	for _, key := range keys {
		for _, mode := range modes {
			notes, err := Notes(key, mode)
			assert.NoError(t, err)
			assert.Len(t, notes, 7)

			letters := make(map[byte]bool)
			for _, note := range notes {
				letters[note[0]] = true
			}
			assert.Len(t, letters, 7, "key %v %v: %v", key, mode, notes)
		}
	}
}

func TestEmptyModeDefaultsToMajor(t *testing.T) {
	notes, err := Notes("D", "")
	assert.NoError(t, err)
	assert.Equal(t, []string{"D", "E", "F#", "G", "A", "B", "C#"}, notes)
}

func TestUnknownMode(t *testing.T) {
	_, err := Notes("C", "phrygian")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestKeySignature(t *testing.T) {
	assert := assert.New(t)

	sig, ok := KeySignature("A", Major)
	assert.True(ok)
	assert.Equal(3, sig.SharpCount)
	assert.Equal(0, sig.FlatCount)
	assert.Equal([]string{"F#", "C#", "G#"}, sig.Accidentals)

	sig, ok = KeySignature("Eb", Major)
	assert.True(ok)
	assert.Equal(3, sig.FlatCount)
	assert.Equal([]string{"Bb", "Eb", "Ab"}, sig.Accidentals)

	sig, ok = KeySignature("C", Major)
	assert.True(ok)
	assert.Equal(0, sig.SharpCount)
	assert.Equal(0, sig.FlatCount)
	assert.Equal("no sharps or flats", sig.Description)
}

func TestMinorSignatureMatchesRelativeMajor(t *testing.T) {
	pairs := []struct {
		minor    string
		relative string
	}{
		{minor: "A", relative: "C"},
		{minor: "E", relative: "G"},
		{minor: "F#", relative: "A"},
		{minor: "C", relative: "Eb"},
		{minor: "Eb", relative: "Gb"},
	}

	for _, pair := range pairs {
		minorSig, ok := KeySignature(pair.minor, Minor)
		assert.True(t, ok, "minor key %v", pair.minor)
		assert.Equal(t, pair.relative, minorSig.RelativeMajor)

		majorSig, ok := KeySignature(pair.relative, Major)
		assert.True(t, ok)
		assert.Equal(t, majorSig.Accidentals, minorSig.Accidentals)
	}
}

func TestUnknownKeySignature(t *testing.T) {
	_, ok := KeySignature("H", Major)
	assert.False(t, ok)

	// G# major would need a double sharp in its signature
	_, ok = KeySignature("G#", Major)
	assert.False(t, ok)
}

func TestRelatedKeys(t *testing.T) {
	assert := assert.New(t)

	related, ok := RelatedKeys("C", Major)
	assert.True(ok)
	assert.Equal(KeyRef{Key: "G", Mode: Major}, related.Dominant)
	assert.Equal(KeyRef{Key: "F", Mode: Major}, related.Subdominant)
	assert.Equal(KeyRef{Key: "A", Mode: Minor}, related.Relative)

	related, ok = RelatedKeys("A", Minor)
	assert.True(ok)
	assert.Equal(KeyRef{Key: "E", Mode: Minor}, related.Dominant)
	assert.Equal(KeyRef{Key: "D", Mode: Minor}, related.Subdominant)
	assert.Equal(KeyRef{Key: "C", Mode: Major}, related.Relative)

	_, ok = RelatedKeys("X", Major)
	assert.False(ok)
}

func TestCircleOfFifthsPosition(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, CircleOfFifthsPosition("C"))
	assert.Equal(1, CircleOfFifthsPosition("G"))
	assert.Equal(11, CircleOfFifthsPosition("F"))

	// lookups normalize case and enharmonic spelling
	assert.Equal(6, CircleOfFifthsPosition("Gb"))
	assert.Equal(6, CircleOfFifthsPosition("f#"))

	assert.Equal(-1, CircleOfFifthsPosition("H"))
	assert.Equal(-1, CircleOfFifthsPosition(""))
}
