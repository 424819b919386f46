package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "voiceleader",
	Short: "Key, scale and chord explorer with voice-led playback",
	Long:  `Explore keys, scales and chords, and hear progressions played with smooth voice leading.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
