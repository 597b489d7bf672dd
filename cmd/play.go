package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"strummer/debug"
	"strummer/music"
	"strummer/player"
)

var (
	playTempo       float64
	playRhythm      string
	playDrums       string
	playBass        string
	playLoops       int
	playProgression string
	playTonic       string
)

var playCmd = &cobra.Command{
	Use:   "play [chord]",
	Short: "Play a chord or progression from the command line",
	Long: `Play strums one chord (default C) or, with --progression, a
progression expanded from --tonic. Playback runs for --loops passes and
then exits.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Float64Var(&playTempo, "tempo", 0, "tempo in BPM (default from config)")
	playCmd.Flags().StringVar(&playRhythm, "rhythm", "", "rhythm pattern id")
	playCmd.Flags().StringVar(&playDrums, "drums", "", "drum pattern id")
	playCmd.Flags().StringVar(&playBass, "bass", "", "bass pattern id")
	playCmd.Flags().IntVar(&playLoops, "loops", 1, "how many passes to play")
	playCmd.Flags().StringVar(&playProgression, "progression", "", "progression id, e.g. I-IV-V")
	playCmd.Flags().StringVar(&playTonic, "tonic", "C", "tonic for --progression")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	if debugFlag {
		if err := debug.Enable(); err != nil {
			return err
		}
		defer debug.Disable()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if playTempo != 0 {
		cfg.Tempo = playTempo
	}
	if playRhythm != "" {
		cfg.Rhythm = playRhythm
	}
	if playDrums != "" {
		cfg.DrumPattern = playDrums
	}
	if playBass != "" {
		cfg.BassPattern = playBass
	}

	ctrl := newController(cfg)
	defer ctrl.Stop()

	if playLoops < 1 {
		playLoops = 1
	}

	for pass := 0; pass < playLoops; pass++ {
		if playProgression != "" {
			tonic := music.ParsePitchClass(playTonic)
			if tonic < 0 {
				return fmt.Errorf("unknown tonic %q", playTonic)
			}
			ctrl.LoadProgression(tonic, playProgression)
			if err := ctrl.PlaySequence(false); err != nil {
				return err
			}
		} else {
			chord := "C"
			if len(args) == 1 {
				chord = music.SymbolToChordKey(args[0])
			}
			if err := ctrl.PlaySingle(chord, 0, false); err != nil {
				return err
			}
		}
		waitForIdle(ctrl)
	}

	// Let scheduled note-offs and tails ring out.
	time.Sleep(1500 * time.Millisecond)
	return nil
}

func waitForIdle(ctrl *player.Controller) {
	for ctrl.Mode() != player.ModeIdle {
		time.Sleep(50 * time.Millisecond)
	}
}
