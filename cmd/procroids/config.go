package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/procroids/internal/config"
	"github.com/vovakirdan/procroids/internal/games/asteroids"
)

var flagWriteConfig string

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the default config for a mode",
	Long: `Print the built-in YAML config for a mode (default: procroids).
With --write the file is saved instead, ready to be edited and passed
back with --config. An existing file is never overwritten.

Examples:
  procroids config
  procroids config --write ~/.procroids/configs/asteroids.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagWriteConfig, "write", "", "Write the default config to this path")
}

func runConfig(_ *cobra.Command, args []string) error {
	mode := string(asteroids.ModeProcs)
	if len(args) == 1 {
		mode = args[0]
	}

	data := config.GetDefaultYAML(mode)
	if data == nil {
		return fmt.Errorf("no config for mode %q", mode)
	}

	if flagWriteConfig == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	path := expandHome(flagWriteConfig)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
