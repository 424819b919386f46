package cmd

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/jsphweid/voiceleader/constants"
	"github.com/jsphweid/voiceleader/model"
	"github.com/jsphweid/voiceleader/pitch"
	"github.com/jsphweid/voiceleader/voicelead"
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Revoices chords held on a midi in port",
	Long:  `Revoices chords held on a midi in port`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func listen() {
	defer midi.CloseDriver()

	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a midi in port")
		return
	}

	var mu sync.Mutex
	held := make(map[uint8]bool)
	var previous model.Voicing

	// coalesce the note-on bursts of a strummed or fingered chord
	debounced := debounce.New(75 * time.Millisecond)

	revoice := func() {
		mu.Lock()
		nums := make([]int, 0, len(held))
		for num := range held {
			nums = append(nums, int(num))
		}
		mu.Unlock()
		if len(nums) == 0 {
			return
		}
		sort.Ints(nums)

		names := make([]string, 0, len(nums))
		for _, num := range nums {
			name, _ := pitch.FromMIDI(uint8(num))
			names = append(names, name)
		}

		v := voicelead.Optimize(names, previous, constants.DefaultOctave)
		previous = v
		fmt.Printf("voicing: %v\n", v)
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			mu.Lock()
			held[key] = true
			mu.Unlock()
			debounced(revoice)
		case msg.GetNoteEnd(&ch, &key):
			mu.Lock()
			delete(held, key)
			mu.Unlock()
			debounced(revoice)
		default:
			// ignore
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	time.Sleep(time.Second * 5000)
	stop()
}
