package config

import (
	"log/slog"
)

const (
	EnvSeed        = "TESTKIT_SEED"
	EnvMaxAttempts = "TESTKIT_MAX_ATTEMPTS"
	EnvLogLevel    = "TESTKIT_LOG_LEVEL"
	EnvColor       = "TESTKIT_COLOR"
	EnvNoColor     = "NO_COLOR"

	DefaultMaxAttempts = 100
)

// Settings is the environment-driven configuration shared by the testkit packages and the fixturegen CLI.
type Settings struct {
	Seed        uint64
	Seeded      bool // Seeded is true when Seed was explicitly configured.
	MaxAttempts int
	LogLevel    slog.Level
}

// Load reads [Settings] from the environment, falling back to defaults for anything unset or invalid.
func Load() Settings {
	s := Settings{
		MaxAttempts: DefaultMaxAttempts,
		LogLevel:    Level(EnvLogLevel, slog.LevelWarn),
	}
	s.Seed, s.Seeded = LookupUint(EnvSeed)
	if attempts := Int(EnvMaxAttempts, DefaultMaxAttempts); attempts > 0 {
		s.MaxAttempts = int(attempts)
	}
	return s
}

// ColorOverride reports whether the environment forces colored output on or off.
// NO_COLOR takes precedence over TESTKIT_COLOR.
// The second return value is false when neither variable expresses a preference.
func ColorOverride() (enabled bool, ok bool) {
	if len(Val(EnvNoColor, "")) > 0 {
		return false, true
	}
	return LookupBool(EnvColor)
}
