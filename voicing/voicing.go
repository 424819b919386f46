package voicing

import (
	"github.com/jsphweid/voiceleader/constants"
	"github.com/jsphweid/voiceleader/model"
	"github.com/jsphweid/voiceleader/pitch"
)

// Pitch gives a voice an absolute semitone index for ordering and
// distance math, on the MIDI scale (C4 = 60). Unparseable notes sink to
// the bottom instead of failing.
func Pitch(v model.Voice) int {
	semitone, err := pitch.NoteToSemitone(v.Note)
	if err != nil {
		return 0
	}
	return (v.Octave+1)*12 + semitone
}

// Create turns an unordered note list into a close-position voicing:
// each note takes the lowest octave that keeps the sequence strictly
// ascending, so the span never exceeds an octave per extra voice and
// stays within constants.MaxCloseVoicingSpan for triads and sevenths.
// Voices are panned evenly across the stereo field.
func Create(notes []string, baseOctave int) model.Voicing {
	if baseOctave == 0 {
		baseOctave = constants.DefaultOctave
	}

	var voices model.Voicing
	prevPitch := -1
	for _, note := range notes {
		semitone, err := pitch.NoteToSemitone(note)
		if err != nil {
			// malformed notes are skipped, never fatal
			continue
		}
		p := (baseOctave+1)*12 + semitone
		for p <= prevPitch {
			p += 12
		}
		voices = append(voices, model.Voice{Note: note, Octave: p/12 - 1})
		prevPitch = p
	}

	if len(voices) > 1 {
		for i := range voices {
			voices[i].Pan = -0.5 + float64(i)/float64(len(voices)-1)
		}
	}
	return voices
}

func rotate(notes []string, n int) []string {
	res := make([]string, 0, len(notes))
	res = append(res, notes[n:]...)
	res = append(res, notes[:n]...)
	return res
}

// Candidates builds the selection pool for one chord: every rotation of
// the note list (each rotation is one inversion) crossed with octaves
// targetOctave-1 through targetOctave+1. Duplicates are fine, scoring
// weeds them out.
func Candidates(notes []string, targetOctave int) []model.Voicing {
	if targetOctave == 0 {
		targetOctave = constants.DefaultOctave
	}
	if len(notes) == 0 {
		return []model.Voicing{nil}
	}

	var candidates []model.Voicing
	for r := 0; r < len(notes); r++ {
		rotated := rotate(notes, r)
		for _, offset := range []int{-1, 0, 1} {
			candidates = append(candidates, Create(rotated, targetOctave+offset))
		}
	}
	return candidates
}
