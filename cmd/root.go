package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"strummer/audio"
	"strummer/audio/midisynth"
	"strummer/audio/synth"
	"strummer/config"
	"strummer/debug"
	"strummer/player"
	"strummer/theme"
	"strummer/tui"
)

var (
	debugFlag   bool
	backendFlag string
	portFlag    string
)

var rootCmd = &cobra.Command{
	Use:   "strummer",
	Short: "A guitar practice sequencer with strums, drums and bass",
	Long: `strummer strums chord voicings on a virtual guitar to a rhythm
pattern, with a drum groove and bass line locked to the same clock.
Run without arguments for the interactive TUI.`,
	RunE: runTUI,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "write a debug log to ~/.config/strummer/debug.log")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "sound backend: synth or midi")
	rootCmd.PersistentFlags().StringVar(&portFlag, "port", "", "MIDI output port name (midi backend)")
}

// loadConfig reads the config file and folds in command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	if backendFlag != "" {
		cfg.Backend = config.BackendType(backendFlag)
	}
	if portFlag != "" {
		cfg.MIDIPort = portFlag
	}
	return cfg, nil
}

func newBackend(cfg *config.Config) audio.Backend {
	if cfg.Backend == config.BackendMIDI {
		return midisynth.New(cfg.MIDIPort)
	}
	return synth.New()
}

// newController builds a playback controller with the configured settings.
func newController(cfg *config.Config) *player.Controller {
	ctrl := player.NewController(newBackend(cfg))
	ctrl.SetTempo(cfg.Tempo)
	ctrl.SetSwing(cfg.Swing)
	ctrl.SetStrumInterval(time.Duration(cfg.StrumMs) * time.Millisecond)
	ctrl.SetRhythm(cfg.Rhythm)
	ctrl.SetDrumPattern(cfg.DrumPattern)
	ctrl.SetBassPattern(cfg.BassPattern)
	ctrl.SetDrumsEnabled(cfg.Mixer.DrumsEnabled)
	ctrl.SetBassEnabled(cfg.Mixer.BassEnabled)
	ctrl.SetVolumes(cfg.Mixer.GuitarVolume, cfg.Mixer.BassVolume, cfg.Mixer.DrumVolume)
	return ctrl
}

func runTUI(cmd *cobra.Command, args []string) error {
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

	ctrl := newController(cfg)
	m := tui.NewModel(ctrl, cfg, theme.New())
	p := tea.NewProgram(m, tea.WithAltScreen())

	_, err = p.Run()
	return err
}
