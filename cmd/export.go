package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsphweid/voiceleader/constants"
	"github.com/jsphweid/voiceleader/library"
	vmidi "github.com/jsphweid/voiceleader/midi"
	"github.com/jsphweid/voiceleader/voicelead"
)

var exportOctave int
var exportBPM float64

func init() {
	exportCmd.Flags().IntVar(&exportOctave, "octave", constants.DefaultOctave, "target octave for voicings")
	exportCmd.Flags().Float64Var(&exportBPM, "bpm", 90, "tempo in beats per minute")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [progression]",
	Short: "Exports a voiced progression as a midi file",
	Long:  `Exports a voiced progression as a midi file`,
	Run: func(cmd *cobra.Command, args []string) {
		name := "ii-V-I"
		if len(args) == 1 {
			name = args[0]
		}
		export(name)
	},
}

func export(name string) {
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

	voicings := voicelead.OptimizeProgression(chords, exportOctave)
	s := vmidi.BuildSMF(voicings, exportBPM)

	dir := constants.GetExportDir()
	if err := os.MkdirAll(dir, 0777); err != nil {
		panic("Could not create export dir: " + err.Error())
	}
	filename := filepath.Join(dir, uuid.New().String()+".mid")
	if err := vmidi.WriteFile(filename, s); err != nil {
		panic("Could not write midi file: " + err.Error())
	}
	fmt.Printf("Wrote %v\n", filename)
}
