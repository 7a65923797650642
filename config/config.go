// Package config loads the YAML configuration of the wordmark command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chapar-rest/wordmark"
	"github.com/chapar-rest/wordmark/memento"
	"github.com/chapar-rest/wordmark/textstyle/decoration"
)

const appDir = "wordmark"

type File struct {
	LogLevel string                  `yaml:"log_level,omitempty"`
	Storage  Storage                 `yaml:"storage"`
	Palette  []wordmark.PaletteColor `yaml:"palette,omitempty"`
	Style    Style                   `yaml:"style,omitempty"`
}

type Storage struct {
	// Backend is one of file, sqlite or memory.
	Backend string `yaml:"backend"`
	Path    string `yaml:"path,omitempty"`
}

// Style overrides the look of highlight decorations. The background always
// comes from the highlight itself.
type Style struct {
	Foreground   string `yaml:"foreground,omitempty"`
	BorderRadius string `yaml:"border_radius,omitempty"`
	FontWeight   string `yaml:"font_weight,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() File {
	return File{
		LogLevel: "warn",
		Storage: Storage{
			Backend: memento.BackendFile,
			Path:    defaultStatePath(memento.BackendFile),
		},
		Palette: wordmark.DefaultPalette,
		Style: Style{
			Foreground:   wordmark.DefaultStyle.ForegroundColor,
			BorderRadius: wordmark.DefaultStyle.BorderRadius,
			FontWeight:   wordmark.DefaultStyle.FontWeight,
		},
	}
}

// Load reads the configuration at path. A missing file yields Default.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return File{}, fmt.Errorf("read config file %q: %w", path, err)
	}

	return Parse(data, path)
}

// Parse decodes data on top of Default and validates the result.
func Parse(data []byte, source string) (File, error) {
	cfg := Default()
	cfg.Storage.Path = ""

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse YAML in %q: %w", source, err)
	}

	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = memento.BackendFile
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = defaultStatePath(cfg.Storage.Backend)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return cfg, fmt.Errorf("invalid config in %q: %s", source, strings.Join(errs, "; "))
	}
	return cfg, nil
}

func (cfg File) Validate() []string {
	var errs []string

	if _, err := parseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, err.Error())
	}

	switch cfg.Storage.Backend {
	case memento.BackendFile, memento.BackendSQLite, memento.BackendMemory:
	default:
		errs = append(errs, fmt.Sprintf("storage.backend %q is not one of file, sqlite, memory", cfg.Storage.Backend))
	}

	seen := map[string]struct{}{}
	for i, c := range cfg.Palette {
		if strings.TrimSpace(c.Label) == "" {
			errs = append(errs, fmt.Sprintf("palette[%d].label is required", i))
		}
		if c.Label == wordmark.CustomColorLabel {
			errs = append(errs, fmt.Sprintf("palette[%d].label %q is reserved", i, c.Label))
		}
		if _, ok := seen[c.Label]; ok {
			errs = append(errs, fmt.Sprintf("palette[%d] duplicate label %q", i, c.Label))
		}
		seen[c.Label] = struct{}{}
		if !wordmark.IsHexColor(c.Color) {
			errs = append(errs, fmt.Sprintf("palette[%d].color %q is not a #RRGGBB color", i, c.Color))
		}
	}

	if _, err := decoration.NewStyle(cfg.DecorationStyle()); err != nil {
		errs = append(errs, fmt.Sprintf("style: %v", err))
	}
	return errs
}

// DecorationStyle returns the base style for highlight decorations.
func (cfg File) DecorationStyle() wordmark.DecorationStyle {
	return wordmark.DecorationStyle{
		ForegroundColor: cfg.Style.Foreground,
		BorderRadius:    cfg.Style.BorderRadius,
		FontWeight:      cfg.Style.FontWeight,
	}
}

// Level returns the configured slog level.
func (cfg File) Level() slog.Level {
	level, _ := parseLevel(cfg.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn, fmt.Errorf("log_level %q is not one of debug, info, warn, error", s)
	}
	return level, nil
}

// DefaultPath returns the default location of the config file.
func DefaultPath() string {
	return filepath.Join(userConfigDir(), appDir, "config.yaml")
}

func defaultStatePath(backend string) string {
	name := "state.json"
	if backend == memento.BackendSQLite {
		name = "state.db"
	}
	return filepath.Join(userConfigDir(), appDir, name)
}

func userConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return dir
}
