package token

import "fmt"

// Number checks that d is a decimal number: an optional '-', one or more
// digits and an optional fraction of one or more digits.  Exponents are not
// accepted.  It reports whether d has a fraction.
func Number(d string) (bool, error) {
	i := 0
	if i < len(d) && d[i] == '-' {
		i++
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return false, fmt.Errorf("%w %q", ErrNumber, d)
	}
	i += digits
	f := fract(d[i:])
	if i+f != len(d) {
		return false, fmt.Errorf("%w %q", ErrNumber, d)
	}
	return f != 0, nil
}

// IsNumberStart reports whether d starts like a number: a digit, or '-'
// followed by a digit.
func IsNumberStart(d string) bool {
	if d == "" {
		return false
	}
	if d[0] == '-' {
		return len(d) > 1 && asciiDigit(d[1])
	}
	return asciiDigit(d[0])
}

func asciiDigits(d string) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

// fract returns the length of a leading '.' followed by one or more digits,
// or 0.
func fract(d string) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}
