package bldc

import (
	"strconv"
)

// ParseDirection maps the operator token for a direction of rotation.
// Matching is exact and case-sensitive.
func ParseDirection(tok []byte) (Direction, bool) {
	switch string(tok) {
	case "cw":
		return Clockwise, true
	case "acw":
		return AntiClockwise, true
	}
	return 0, false
}

// ParseControlMode maps the operator token for a control mode.
// Matching is exact and case-sensitive.
func ParseControlMode(tok []byte) (ControlMode, bool) {
	switch string(tok) {
	case "ht":
		return HallEffectTrapezoidal, true
	case "et":
		return EncoderTrapezoidal, true
	case "es":
		return EncoderSinusoidal, true
	case "sm":
		return StepMode, true
	}
	return 0, false
}

// Atof converts the longest decimal prefix of tok to a float.
//
// It never fails: a token with no numeric prefix converts to 0, and
// trailing garbage is ignored ("12abc" is 12). Callers rely on range
// checks to reject the result.
func Atof(tok []byte) float64 {
	i := 0
	for i < len(tok) && isSpace(tok[i]) {
		i++
	}
	start := i
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		i++
	}
	digits := 0
	for i < len(tok) && isDigit(tok[i]) {
		i++
		digits++
	}
	if i < len(tok) && tok[i] == '.' {
		i++
		for i < len(tok) && isDigit(tok[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	end := i

	// Exponent only counts when at least one digit follows it.
	if i < len(tok) && (tok[i] == 'e' || tok[i] == 'E') {
		j := i + 1
		if j < len(tok) && (tok[j] == '+' || tok[j] == '-') {
			j++
		}
		if j < len(tok) && isDigit(tok[j]) {
			for j < len(tok) && isDigit(tok[j]) {
				j++
			}
			end = j
		}
	}

	f, err := strconv.ParseFloat(string(tok[start:end]), 64)
	if err != nil {
		// Out of range values come back as ±Inf with ErrRange, which is
		// what the range checks expect to see.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f
		}
		return 0
	}
	return f
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
