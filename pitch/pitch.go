package pitch

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidNote = errors.New("invalid note")

// Letters in scale order starting from C, with their natural semitones.
var letters = [7]byte{'C', 'D', 'E', 'F', 'G', 'A', 'B'}
var naturalSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

var SharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var FlatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// NoteToSemitone maps a note name to its pitch class 0-11. Case is
// normalized and the wrap spellings B#, Cb, E#, Fb land on their natural
// equivalents (C, B, F, E).
func NoteToSemitone(name string) (int, error) {
	n := strings.TrimSpace(name)
	if len(n) == 0 || len(n) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNote, name)
	}
	letter := n[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	semitone := -1
	for i, l := range letters {
		if l == letter {
			semitone = naturalSemitones[i]
		}
	}
	if semitone == -1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNote, name)
	}
	if len(n) == 2 {
		switch n[1] {
		case '#':
			semitone++
		case 'b', 'B':
			semitone--
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidNote, name)
		}
	}
	return ((semitone % 12) + 12) % 12, nil
}

// LetterIndex returns the position of the note's letter in C-D-E-F-G-A-B.
func LetterIndex(name string) (int, error) {
	n := strings.TrimSpace(name)
	if len(n) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNote, name)
	}
	letter := n[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	for i, l := range letters {
		if l == letter {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidNote, name)
}

// Spell names the pitch class on the given letter, e.g. letter E with
// semitone 4 is "E" and letter B with semitone 0 is "B#". Spellings that
// would need more than a double accidental fall back to the sharp name.
func Spell(letterIdx, semitone int) string {
	letterIdx = ((letterIdx % 7) + 7) % 7
	semitone = ((semitone % 12) + 12) % 12
	delta := semitone - naturalSemitones[letterIdx]
	for delta > 6 {
		delta -= 12
	}
	for delta < -6 {
		delta += 12
	}
	letter := string(rune(letters[letterIdx]))
	switch delta {
	case 0:
		return letter
	case 1:
		return letter + "#"
	case -1:
		return letter + "b"
	case 2:
		return letter + "##"
	case -2:
		return letter + "bb"
	}
	return SharpNames[semitone]
}

// MIDINote converts a note name and octave to a MIDI note number, so
// C4 = 60 (middle C).
func MIDINote(name string, octave int) (uint8, error) {
	semitone, err := NoteToSemitone(name)
	if err != nil {
		return 0, err
	}
	num := (octave+1)*12 + semitone
	if num < 0 || num > 127 {
		return 0, fmt.Errorf("%w: %v%v is outside the midi range", ErrInvalidNote, name, octave)
	}
	return uint8(num), nil
}

// FromMIDI converts a MIDI note number back to a sharp-spelled name and
// octave.
func FromMIDI(num uint8) (string, int) {
	return SharpNames[num%12], int(num)/12 - 1
}
