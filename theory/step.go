package theory

import "fmt"

// Step advances current by step within a table of the given length,
// wrapping around both ends. The result is always in [0, length).
func Step(current, step, length int) (int, error) {
	if length <= 0 {
		return 0, fmt.Errorf("table length %d: %w", length, ErrIndexOutOfRange)
	}
	if current < 0 || current >= length {
		return 0, fmt.Errorf("index %d not in [0,%d): %w", current, length, ErrIndexOutOfRange)
	}

	next := (current + step) % length
	if next < 0 {
		next += length
	}
	return next, nil
}
