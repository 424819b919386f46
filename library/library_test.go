package library

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/voiceleader/model"
)

func TestPresetNames(t *testing.T) {
	assert.Equal(t, []string{"I-IV-V-I", "I-V-vi-IV", "i-iv-V-i", "ii-V-I"}, PresetNames())
}

func TestGetProgressionPreset(t *testing.T) {
	assert := assert.New(t)

	p, ok := GetProgression("ii-V-I")
	assert.True(ok)
	assert.Equal("C", p.Key)
	assert.Equal([]string{"ii7", "V7", "I"}, p.Numerals)
}

func TestChords(t *testing.T) {
	assert := assert.New(t)

	p, _ := GetProgression("ii-V-I")
	chords, err := Chords(p)
	assert.NoError(err)
	assert.Equal([][]string{
		{"D", "F", "A", "C"},
		{"G", "B", "D", "F"},
		{"C", "E", "G"},
	}, chords)

	p, _ = GetProgression("i-iv-V-i")
	chords, err = Chords(p)
	assert.NoError(err)
	assert.Equal([][]string{
		{"A", "C", "E"},
		{"D", "F", "A"},
		{"E", "G#", "B"},
		{"A", "C", "E"},
	}, chords)
}

func TestChordsBadKey(t *testing.T) {
	_, err := Chords(model.Progression{
		Name: "broken", Key: "H", Mode: "major",
		Numerals: []string{"I"},
	})
	assert.Error(t, err)
}
