package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/voiceleader/library"
	"github.com/jsphweid/voiceleader/model"
)

var saveKey string
var saveMode string

func init() {
	saveCmd.Flags().StringVar(&saveKey, "key", "C", "tonic of the progression")
	saveCmd.Flags().StringVar(&saveMode, "mode", "major", "mode of the progression")
	rootCmd.AddCommand(saveCmd)
}

var saveCmd = &cobra.Command{
	Use:   "save [name] [numerals...]",
	Short: "Saves a progression to the library",
	Long:  `Saves a progression to the library`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			panic("Need a name and at least one numeral...")
		}
		p := model.Progression{
			Name:     args[0],
			Key:      saveKey,
			Mode:     saveMode,
			Numerals: args[1:],
		}
		if err := library.SaveProgression(p); err != nil {
			panic("Could not save progression: " + err.Error())
		}
		fmt.Printf("Saved %v\n", p.Name)
	},
}
