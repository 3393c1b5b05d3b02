package engine

import (
	"strconv"
	"strings"
)

// ParseHabitID parses a user-supplied id. A leading '#' is allowed.
func ParseHabitID(input string) (int64, error) {
	s := strings.TrimPrefix(strings.TrimSpace(input), "#")
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, InvalidIDError{Input: input}
	}
	return id, nil
}
