// procroids is an asteroids game for the terminal. In procroids mode every
// asteroid is a process on the host, and shooting one down sends it a kill
// request.
//
// Usage:
//
//	procroids list              - List available modes
//	procroids play [mode]       - Play a mode (default: procroids)
//	procroids serve             - Start SSH server for remote play (classic mode)
//	procroids scores [mode]     - Show high scores
//	procroids kills             - Show the kill audit
//	procroids config [mode]     - Print or write the default config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.procroids/scores.db)
//	--config <path>       - Custom asteroids.yaml
//	--difficulty <preset> - easy, normal, hard, fixed
//	--log-file <path>     - Log file for play (default: ~/.procroids/procroids.log)
//	--log-level <level>   - debug, info, warn, error
//
// A .env file in the working directory is loaded at start. PROCROIDS_CONFIG,
// PROCROIDS_DB and PROCROIDS_LOG provide defaults for --config, --db and
// --log-file.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/procroids/internal/games/asteroids"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

// envFlags maps environment variables to the flags they default.
var envFlags = map[string]string{
	"PROCROIDS_CONFIG": "config",
	"PROCROIDS_DB":     "db",
	"PROCROIDS_LOG":    "log-file",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "procroids",
	Short: "Procroids - shoot down your processes",
	Long: `Procroids is asteroids in the terminal. In procroids mode the field is
filled with the processes running on this machine, labelled by pid.
Destroying one queues a kill request for that process.

Kills are a dry run by default: the pid is echoed and logged. Pass
--armed to 'play' to send SIGTERM instead.

Available commands:
  list     - Show all available modes
  play     - Play a mode
  serve    - Start SSH server for remote play
  scores   - View high scores
  kills    - View the kill audit
  config   - Print the default config

Examples:
  procroids play
  procroids play asteroids --difficulty hard
  procroids play procroids --armed
  procroids serve --ssh :2222
  procroids scores procroids --board`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.procroids/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom asteroids config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.procroids/procroids.log", "Log file used while playing")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(killsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadEnv reads .env and fills unset flags from the environment, then
// hands the shared settings to the game package.
func loadEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	flags := cmd.Flags()
	for env, name := range envFlags {
		v, ok := os.LookupEnv(env)
		if !ok || v == "" || flags.Lookup(name) == nil || flags.Changed(name) {
			continue
		}
		if err := flags.Set(name, v); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}

	asteroids.SetConfigPath(flagConfig)
	asteroids.SetDifficultyPreset(flagDifficulty)
	return nil
}

// newLogger builds the shared logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "procroids",
	})
	logger.SetLevel(level)
	return logger, nil
}

// openLogFile opens the play log for appending. The terminal belongs to
// the game while it runs, so logs go to a file.
func openLogFile(path string) (*os.File, error) {
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
