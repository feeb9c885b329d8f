package theory

import (
	"fmt"
	"strings"
)

var romanNumerals = [NumModes]string{"I", "II", "III", "IV", "V", "VI", "VII"}

// ToRoman returns the roman numeral for a scale degree 1-7.
func ToRoman(n int, upper bool) (string, error) {
	if n < 1 || n > len(romanNumerals) {
		return "", fmt.Errorf("roman numeral for %d: %w", n, ErrIndexOutOfRange)
	}
	if upper {
		return romanNumerals[n-1], nil
	}
	return strings.ToLower(romanNumerals[n-1]), nil
}
