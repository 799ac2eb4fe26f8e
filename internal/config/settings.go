package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Settings are the runtime options shared by both frontends.
type Settings struct {
	Seed       int64 // 0 picks a time-based seed
	LogLevel   string
	LogFormat  string
	LogFile    string // empty means the frontend's default output
	Mute       bool
	Scale      float64 // window scale for the ebiten frontend
	StartLevel int     // debug: first level after pressing start
	SkipMenu   bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:   "info",
		LogFormat:  "text",
		Scale:      1,
		StartLevel: 1,
	}
}

// ParseSettings reads settings from the environment first and lets
// command-line flags override them.
func ParseSettings(name string, args []string) (Settings, error) {
	s := DefaultSettings()
	if err := s.applyEnv(os.LookupEnv); err != nil {
		return s, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Int64Var(&s.Seed, "seed", s.Seed, "world seed (0 for random)")
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "logrus level (debug, info, warn, error)")
	fs.StringVar(&s.LogFormat, "log-format", s.LogFormat, "log format: text or json")
	fs.StringVar(&s.LogFile, "log-file", s.LogFile, "append logs to this file")
	fs.BoolVar(&s.Mute, "mute", s.Mute, "disable sound effects")
	fs.Float64Var(&s.Scale, "scale", s.Scale, "window scale")
	fs.IntVar(&s.StartLevel, "level", s.StartLevel, "starting level (1-10)")
	fs.BoolVar(&s.SkipMenu, "skip-menu", s.SkipMenu, "start playing immediately")
	if err := fs.Parse(args); err != nil {
		return s, err
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate rejects values the game cannot run with.
func (s Settings) Validate() error {
	if s.StartLevel < 1 || s.StartLevel > MaxLevel {
		return fmt.Errorf("starting level %d out of range 1-%d", s.StartLevel, MaxLevel)
	}
	if s.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", s.Scale)
	}
	return nil
}

func (s *Settings) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("ROBOT_SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse ROBOT_SEED: %w", err)
		}
		s.Seed = seed
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		s.LogLevel = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok && v != "" {
		s.LogFormat = v
	}
	if v, ok := lookup("LOG_FILE"); ok && v != "" {
		s.LogFile = v
	}
	if v, ok := lookup("ROBOT_MUTE"); ok && v != "" {
		mute, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parse ROBOT_MUTE: %w", err)
		}
		s.Mute = mute
	}
	return nil
}
