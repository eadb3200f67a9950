package colour

import (
	"fmt"
	"strings"
)

// ContrastLevel is a named minimum contrast ratio between a background and its text.
type ContrastLevel string

const (
	// LevelA requires 3:1, the WCAG minimum for large text.
	LevelA ContrastLevel = "A"
	// LevelAA requires 4.5:1.
	LevelAA ContrastLevel = "AA"
	// LevelAAA requires 7:1.
	LevelAAA ContrastLevel = "AAA"
)

// ValidLevels returns all contrast levels in ascending order of strictness.
func ValidLevels() []ContrastLevel {
	return []ContrastLevel{LevelA, LevelAA, LevelAAA}
}

// Threshold returns the minimum contrast ratio for the level.
// Unknown levels fall back to LevelA.
func (l ContrastLevel) Threshold() float64 {
	switch l {
	case LevelAA:
		return 4.5
	case LevelAAA:
		return 7.0
	default:
		return 3.0
	}
}

// ParseContrastLevel parses a level name, ignoring case.
func ParseContrastLevel(s string) (ContrastLevel, error) {
	level := ContrastLevel(strings.ToUpper(strings.TrimSpace(s)))
	for _, valid := range ValidLevels() {
		if level == valid {
			return level, nil
		}
	}
	return "", fmt.Errorf("invalid contrast level: %s (valid levels: %v)", s, ValidLevels())
}

// String implements pflag.Value.
func (l ContrastLevel) String() string {
	return string(l)
}

// Set implements pflag.Value.
func (l *ContrastLevel) Set(s string) error {
	parsed, err := ParseContrastLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Type implements pflag.Value.
func (l *ContrastLevel) Type() string {
	return "level"
}
