package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsphweid/voiceleader/scale"
)

func init() {
	rootCmd.AddCommand(keyCmd)
}

var keyCmd = &cobra.Command{
	Use:   "key [tonic] [mode]",
	Short: "Inspects a key",
	Long:  `Inspects a key: scale, signature and related keys`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			panic("Need at least a tonic...")
		}
		mode := scale.Major
		if len(args) > 1 {
			mode = scale.Mode(args[1])
		}
		inspectKey(args[0], mode)
	},
}

func inspectKey(tonic string, mode scale.Mode) {
	notes, err := scale.Notes(tonic, mode)
	if err != nil {
		fmt.Printf("Could not build scale: %v\n", err)
		return
	}
	fmt.Printf("scale: %v\n", strings.Join(notes, " "))

	if sig, ok := scale.KeySignature(tonic, mode); ok {
		fmt.Printf("signature: %v", sig.Description)
		if len(sig.Accidentals) > 0 {
			fmt.Printf(" (%v)", strings.Join(sig.Accidentals, ", "))
		}
		if sig.RelativeMajor != "" {
			fmt.Printf(", relative major %v", sig.RelativeMajor)
		}
		fmt.Println()
	}

	if related, ok := scale.RelatedKeys(tonic, mode); ok {
		fmt.Printf("dominant: %v %v\n", related.Dominant.Key, related.Dominant.Mode)
		fmt.Printf("subdominant: %v %v\n", related.Subdominant.Key, related.Subdominant.Mode)
		fmt.Printf("relative: %v %v\n", related.Relative.Key, related.Relative.Mode)
	}

	if pos := scale.CircleOfFifthsPosition(tonic); pos >= 0 {
		fmt.Printf("circle of fifths position: %v\n", pos)
	}
}
