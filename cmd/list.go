package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"strummer/audio/midisynth"
	"strummer/music"
	"strummer/pattern"
	"strummer/widgets"
)

var chordsCmd = &cobra.Command{
	Use:   "chords",
	Short: "List the chord dictionary",
	Run: func(cmd *cobra.Command, args []string) {
		for _, key := range music.ChordKeys() {
			for variant := 0; variant < music.Variants(key); variant++ {
				v := music.LookupVoicing(key, variant)
				fmt.Printf("%-8s %d: %s\n", key, variant+1, widgets.FretLabel(v))
			}
		}
	},
}

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List rhythm, drum and bass patterns",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("rhythm:")
		for _, id := range pattern.RhythmIDs() {
			fmt.Printf("  %-16s %s\n", id, pattern.GetRhythm(id).Name)
		}
		fmt.Println("drums:")
		for _, id := range pattern.DrumIDs() {
			fmt.Printf("  %-16s %s\n", id, pattern.GetDrumPattern(id).Name)
		}
		fmt.Println("bass:")
		for _, id := range pattern.BassIDs() {
			fmt.Printf("  %s\n", id)
		}
	},
}

var progressionsCmd = &cobra.Command{
	Use:   "progressions",
	Short: "List the progression templates",
	Run: func(cmd *cobra.Command, args []string) {
		for _, id := range music.ProgressionIDs() {
			fmt.Println(id)
		}
	},
}

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List MIDI output ports",
	Run: func(cmd *cobra.Command, args []string) {
		ports := midisynth.OutPorts()
		if len(ports) == 0 {
			fmt.Println("no MIDI output ports found")
			return
		}
		for _, name := range ports {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(chordsCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(progressionsCmd)
	rootCmd.AddCommand(portsCmd)
}
