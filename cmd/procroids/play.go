package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/procroids/internal/audio"
	"github.com/vovakirdan/procroids/internal/config"
	"github.com/vovakirdan/procroids/internal/core"
	"github.com/vovakirdan/procroids/internal/games/asteroids"
	"github.com/vovakirdan/procroids/internal/platform/tui"
	"github.com/vovakirdan/procroids/internal/proc"
	"github.com/vovakirdan/procroids/internal/registry"
	"github.com/vovakirdan/procroids/internal/storage"
)

var (
	flagDebug  bool
	flagSound  bool
	flagVolume float64
	flagArmed  bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode. Without an argument, procroids mode is
started.

Controls:
  W/Up       - Thrust
  A/Left     - Rotate left
  D/Right    - Rotate right
  Space      - Fire
  P/Esc      - Pause
  R          - Restart (after game over)
  F1/` + "`" + `       - Toggle collider overlay
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Extra lives, slower asteroids
  normal - Defaults from the config
  hard   - Fewer lives, faster asteroids, slower gun
  fixed  - No progression with score

Examples:
  procroids play
  procroids play asteroids --difficulty easy
  procroids play procroids --debug --sound
  procroids play procroids --armed`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with the collider overlay on")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume (0..1)")
	playCmd.Flags().BoolVar(&flagArmed, "armed", false, "Send SIGTERM to destroyed processes instead of a dry run")
}

func runPlay(_ *cobra.Command, args []string) error {
	mode := string(asteroids.ModeProcs)
	if len(args) == 1 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'procroids list' to see available modes", mode)
	}

	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	cfg, err := config.LoadAsteroids(flagConfig)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Debug:    flagDebug,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	asteroids.SetMonitorFactory(monitorFactory(store, logger))

	game, err := registry.Create(mode)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Store:      store,
		Logger:     logger,
		HoldWindow: time.Duration(cfg.Input.HoldWindowMs) * time.Millisecond,
	}

	if flagSound {
		player := audio.NewPlayer(flagVolume, logger)
		if err := player.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
			logger.Warn("sound disabled", "error", err)
		} else {
			defer player.Close()
			opts.Sound = player
		}
	}

	logger.Info("starting", "mode", mode, "armed", flagArmed, "width", width, "height", height)
	return tui.Run(game, rc, opts)
}

// monitorFactory returns the factory procroids mode uses to reach the
// process table. Kill results are written to store when it is available.
func monitorFactory(store *storage.Store, logger *log.Logger) asteroids.MonitorFactory {
	return func(pc config.ProcConfig) (asteroids.Monitor, error) {
		var terminator proc.Terminator = proc.EchoTerminator{Logger: logger.WithPrefix("proc")}
		if flagArmed {
			terminator = proc.NewSignalTerminator()
		}

		m := proc.NewManager(proc.Config{
			ListInterval: time.Duration(pc.ListIntervalMs) * time.Millisecond,
			KillInterval: time.Duration(pc.KillIntervalMs) * time.Millisecond,
			KillQueue:    pc.KillQueue,
		}, proc.OSLister{}, terminator, logger)
		if store != nil {
			m.SetRecorder(store)
		}
		m.Start()
		return m, nil
	}
}
