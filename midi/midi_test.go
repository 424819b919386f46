package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/voiceleader/model"
)

func TestVoicingNotes(t *testing.T) {
	assert := assert.New(t)

	notes := VoicingNotes(model.Voicing{
		{Note: "C", Octave: 3},
		{Note: "E", Octave: 3},
		{Note: "G", Octave: 3},
	})
	assert.Equal([]uint8{48, 52, 55}, notes)

	// out-of-range voices are dropped, not clamped
	notes = VoicingNotes(model.Voicing{
		{Note: "C", Octave: 3},
		{Note: "C", Octave: 11},
	})
	assert.Equal([]uint8{48}, notes)
}

func TestBuildSMF(t *testing.T) {
	assert := assert.New(t)

	voicings := []model.Voicing{
		{
			{Note: "C", Octave: 3},
			{Note: "E", Octave: 3},
			{Note: "G", Octave: 3},
		},
	}
	s := BuildSMF(voicings, 120)
	assert.Len(s.Tracks, 1)

	// tempo, three note-ons, three note-offs, end of track
	assert.Len(s.Tracks[0], 8)
}
