package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// cliConfig is the optional rlekit.toml found by walking up from the
// working directory. Every field maps onto an existing flag default.
type cliConfig struct {
	Output outputConfig `toml:"output"`
	Limits limitsConfig `toml:"limits"`
}

type outputConfig struct {
	Color  string `toml:"color"`
	Format string `toml:"format"`
}

type limitsConfig struct {
	MaxDiagnostics int `toml:"max_diagnostics"`
}

func findRlekitToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "rlekit.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadCLIConfig(path string) (cliConfig, error) {
	var cfg cliConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cliConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	switch cfg.Output.Color {
	case "", "auto", "on", "off":
	default:
		return cliConfig{}, fmt.Errorf("%s: [output].color must be auto, on or off, got %q", path, cfg.Output.Color)
	}
	switch cfg.Output.Format {
	case "", "pretty", "json":
	default:
		return cliConfig{}, fmt.Errorf("%s: [output].format must be pretty or json, got %q", path, cfg.Output.Format)
	}
	if cfg.Limits.MaxDiagnostics < 0 {
		return cliConfig{}, fmt.Errorf("%s: [limits].max_diagnostics must not be negative", path)
	}
	return cfg, nil
}

// applyConfigDefaults подменяет умолчания флагов значениями из
// rlekit.toml. Вызывается до Execute, поэтому явные флаги командной
// строки перезапишут эти значения при разборе.
func applyConfigDefaults(root *cobra.Command) {
	path, ok, err := findRlekitToml(".")
	if err != nil || !ok {
		return
	}
	cfg, err := loadCLIConfig(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	if cfg.Output.Color != "" {
		_ = root.PersistentFlags().Set("color", cfg.Output.Color)
	}
	if cfg.Limits.MaxDiagnostics > 0 {
		_ = root.PersistentFlags().Set("max-diagnostics", strconv.Itoa(cfg.Limits.MaxDiagnostics))
	}
	if cfg.Output.Format != "" {
		_ = tokenizeCmd.Flags().Set("format", cfg.Output.Format)
		_ = parseCmd.Flags().Set("format", cfg.Output.Format)
	}
}
