package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

func getEnv() map[string]string {
	envMap := map[string]string{}
	for _, kv := range os.Environ() {
		key, val, found := strings.Cut(kv, "=")
		if !found {
			continue
		}
		envMap[strings.ToLower(key)] = val
	}
	return envMap
}

// Val will attempt to get an environment variable value using the given key.
// If the variable isn't set, or is empty, then the defaultVal will be returned.
// Note that keys are compared case-insensitive.
func Val(key string, defaultVal string) string {
	if val, ok := getEnv()[strings.ToLower(key)]; ok {
		trimmed := strings.TrimSpace(val)
		if len(trimmed) == 0 {
			return defaultVal
		}
		return trimmed
	}
	return defaultVal
}

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" when using [LookupBool].
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" when using [LookupBool].
)

// LookupBool interprets an environment variable as a boolean using [DefaultTrue] and [DefaultFalse].
// The second return value is false if the variable isn't set, is empty, or isn't recognized.
func LookupBool(key string) (bool, bool) {
	sval := strings.ToLower(Val(key, ""))
	if len(sval) == 0 {
		return false, false
	}
	for _, t := range DefaultTrue {
		if sval == t {
			return true, true
		}
	}
	for _, f := range DefaultFalse {
		if sval == f {
			return false, true
		}
	}
	return false, false
}

// Int will attempt to interpret an environment variable as an integer, returning the defaultVal if the environment variable isn't found or can't be a valid integer.
func Int(key string, defaultVal int64) int64 {
	sval := Val(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	ival, err := strconv.ParseInt(sval, 10, 64)
	if err != nil {
		return defaultVal
	}
	return ival
}

// LookupUint interprets an environment variable as an unsigned 64-bit integer.
// The second return value is false if the variable isn't set or can't be parsed.
func LookupUint(key string) (uint64, bool) {
	sval := Val(key, "")
	if len(sval) == 0 {
		return 0, false
	}
	uval, err := strconv.ParseUint(sval, 10, 64)
	if err != nil {
		return 0, false
	}
	return uval, true
}

// Level interprets an environment variable as a [slog.Level] name, such as "debug" or "warn".
func Level(key string, defaultVal slog.Level) slog.Level {
	sval := Val(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(sval)); err != nil {
		return defaultVal
	}
	return level
}
