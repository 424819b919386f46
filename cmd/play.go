package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/jsphweid/voiceleader/constants"
	"github.com/jsphweid/voiceleader/library"
	vmidi "github.com/jsphweid/voiceleader/midi"
	"github.com/jsphweid/voiceleader/voicelead"
)

var playOctave int
var playBPM float64

func init() {
	playCmd.Flags().IntVar(&playOctave, "octave", constants.DefaultOctave, "target octave for voicings")
	playCmd.Flags().Float64Var(&playBPM, "bpm", 90, "tempo in beats per minute")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play [progression]",
	Short: "Plays a progression on a midi out port",
	Long:  `Plays a progression on a midi out port`,
	Run: func(cmd *cobra.Command, args []string) {
		name := "ii-V-I"
		if len(args) == 1 {
			name = args[0]
		}
		play(name)
	},
}

func play(name string) {
	defer midi.CloseDriver()

	progression, ok := library.GetProgression(name)
	if !ok {
		fmt.Printf("Unknown progression %v, known ones are: %v\n", name, library.PresetNames())
		return
	}

	chords, err := library.Chords(progression)
	if err != nil {
		fmt.Printf("Could not expand progression: %v\n", err)
		return
	}

	out, err := midi.OutPort(0)
	if err != nil {
		fmt.Println("can't find a midi out port")
		return
	}
	send, err := midi.SendTo(out)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	barDuration := time.Duration(4 * float64(time.Minute) / playBPM)
	voicings := voicelead.OptimizeProgression(chords, playOctave)
	for i, v := range voicings {
		fmt.Printf("%v: %v\n", progression.Numerals[i], v)
		notes := vmidi.VoicingNotes(v)
		for _, num := range notes {
			send(midi.NoteOn(0, num, 100))
		}
		time.Sleep(barDuration)
		for _, num := range notes {
			send(midi.NoteOff(0, num))
		}
	}
}
