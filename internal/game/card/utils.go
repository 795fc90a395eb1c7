package card

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"
)

const (
	FirstState = 'A'
	LastState  = 'H'

	// MaxCityNameLen is counted in characters, not bytes.
	MaxCityNameLen = 99
)

var (
	ErrInvalidState = errors.New("invalid card state")
	ErrInvalidCode  = errors.New("invalid card code")
	ErrInvalidCity  = errors.New("invalid city name")
	ErrInvalidArea  = errors.New("invalid card area")
)

// Tipo para funções de validação
type cardValidator func(*Card) error

// ParseState accepts exactly one letter from A to H, in either case, and
// returns it in uppercase.
func ParseState(s string) (byte, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidState, s)
	}
	st := upper(s[0])
	if !isState(st) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidState, s)
	}
	return st, nil
}

// ParseCode accepts codes like "b03" for state 'B' and returns them
// normalized ("B03").
func ParseCode(s string, state byte) (string, error) {
	if len(s) != 3 {
		return "", fmt.Errorf("%w: %q must have 3 characters", ErrInvalidCode, s)
	}
	code := string(upper(s[0])) + s[1:]
	if code[0] != state {
		return "", fmt.Errorf("%w: %q does not belong to state %c", ErrInvalidCode, s, state)
	}
	if !IsValidCode(code) {
		return "", fmt.Errorf("%w: %q, expected %c01 to %c04", ErrInvalidCode, s, state, state)
	}
	return code, nil
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

func isState(b byte) bool {
	return b >= FirstState && b <= LastState
}

// ---- Funções de validação ----

func validateState(c *Card) error {
	if !isState(c.state) {
		return fmt.Errorf("%w: %q", ErrInvalidState, c.state)
	}
	return nil
}

func validateCode(c *Card) error {
	if len(c.code) != 3 || c.code[0] != c.state || !IsValidCode(c.code) {
		return fmt.Errorf("%w: %q for state %c", ErrInvalidCode, c.code, c.state)
	}
	return nil
}

func validateCityName(c *Card) error {
	n := utf8.RuneCountInString(c.cityName)
	if n == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidCity)
	}
	if n > MaxCityNameLen {
		return fmt.Errorf("%w: %d characters (max %d)", ErrInvalidCity, n, MaxCityNameLen)
	}
	return nil
}

func validateArea(c *Card) error {
	if !(c.area > 0) || math.IsInf(c.area, 1) {
		return fmt.Errorf("%w: %v (must be > 0)", ErrInvalidArea, c.area)
	}
	return nil
}
