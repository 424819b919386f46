package midi

import (
	"fmt"
	"os"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/voiceleader/model"
	"github.com/jsphweid/voiceleader/pitch"
)

const ticksPerQuarter = 960
const velocity = 100

// VoicingNotes converts a voicing to MIDI note numbers, dropping voices
// that fall outside the MIDI range.
func VoicingNotes(v model.Voicing) []uint8 {
	var notes []uint8
	for _, voice := range v {
		num, err := pitch.MIDINote(voice.Note, voice.Octave)
		if err != nil {
			continue
		}
		notes = append(notes, num)
	}
	return notes
}

// BuildSMF renders a voiced progression as a single-track Standard MIDI
// File, one chord per 4/4 bar.
func BuildSMF(voicings []model.Voicing, bpm float64) *smf.SMF {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var track smf.Track
	track.Add(0, smf.MetaTempo(bpm))

	barTicks := uint32(4 * ticksPerQuarter)
	var pending uint32
	for _, v := range voicings {
		notes := VoicingNotes(v)
		if len(notes) == 0 {
			// a degenerate voicing still occupies its bar
			pending += barTicks
			continue
		}
		for i, num := range notes {
			var delta uint32
			if i == 0 {
				delta = pending
				pending = 0
			}
			track.Add(delta, gomidi.NoteOn(0, num, velocity))
		}
		for i, num := range notes {
			var delta uint32
			if i == 0 {
				delta = barTicks
			}
			track.Add(delta, gomidi.NoteOff(0, num))
		}
	}
	track.Close(0)
	s.Add(track)
	return s
}

// WriteFile saves the rendered file to disk.
func WriteFile(path string, s *smf.SMF) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create midi file: %w", err)
	}
	defer f.Close()

	if _, err := s.WriteTo(f); err != nil {
		return fmt.Errorf("could not write midi file: %w", err)
	}
	return nil
}
