package game

import (
	"strconv"
	"strings"
)

// ParseIndex reads a flat card index in [0, size).
func ParseIndex(input string, size int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrNotANumber
	}
	if n < 0 || n >= size {
		return 0, ErrOutOfRange
	}
	return n, nil
}

// IsRestart reports whether input is the restart command ("R", any case).
func IsRestart(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), "r")
}

// ParseReplay reads a Y/N answer, case-insensitive.
func ParseReplay(input string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	}
	return false, ErrInvalidReplayChoice
}
