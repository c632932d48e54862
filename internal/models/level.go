package models

import (
	"fmt"
	"strings"
)

type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
	LevelFatal Level = "FATAL"
)

// Levels lists every accepted level, lowest severity first.
var Levels = []Level{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}

// NewLevelFromString accepts an exact, upper-case level name.
func NewLevelFromString(s string) (Level, error) {
	level := Level(s)
	if !level.IsValid() {
		return "", fmt.Errorf("invalid level: %q", s)
	}
	return level, nil
}

// NormalizeLevel trims and upper-cases s before resolving it, for user-facing inputs.
func NormalizeLevel(s string) (Level, error) {
	return NewLevelFromString(strings.ToUpper(strings.TrimSpace(s)))
}

func (l Level) IsValid() bool {
	switch l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal:
		return true
	default:
		return false
	}
}

func (l Level) String() string {
	return string(l)
}
