package input

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"supertrunfo/internal/game/card"
)

// Mensagens mostradas ao jogador quando uma resposta é recusada.
const (
	msgEmpty       = "Entrada vazia. Tente novamente."
	msgState       = "Valor invalido. Digite uma letra de A a H."
	msgCodeFormat  = "Codigo invalido. Use o formato %c01 a %c04 (ex: %c01)."
	msgCityTooLong = "Nome muito longo. Digite no maximo %d caracteres."
	msgUint        = "Valor invalido. Digite um numero inteiro (ex: 123)."
	msgInt         = "Valor invalido. Digite um numero inteiro (ex: 50)."
	msgFloat       = "Valor invalido. Digite um numero (use ponto, ex: 12.5)."
	msgArea        = "Area invalida. Digite um valor maior que 0."
)

// FieldError is a rejected answer. Message is what the player sees before
// being asked again.
type FieldError struct {
	Field   string
	Message string
	Err     error
}

func (e *FieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error { return e.Err }

func parseState(line string) (byte, error) {
	st, err := card.ParseState(line)
	if err != nil {
		return 0, &FieldError{Field: "state", Message: msgState, Err: err}
	}
	return st, nil
}

func codeParser(state byte) func(string) (string, error) {
	return func(line string) (string, error) {
		code, err := card.ParseCode(line, state)
		if err != nil {
			return "", &FieldError{
				Field:   "code",
				Message: fmt.Sprintf(msgCodeFormat, state, state, state),
				Err:     err,
			}
		}
		return code, nil
	}
}

func parseCityName(line string) (string, error) {
	if utf8.RuneCountInString(line) > card.MaxCityNameLen {
		return "", &FieldError{
			Field:   "city",
			Message: fmt.Sprintf(msgCityTooLong, card.MaxCityNameLen),
		}
	}
	return line, nil
}

// numberText drops the blanks around a number. Anything else left over makes
// the whole answer invalid, so "123abc" is never read as 123.
func numberText(line string) string {
	return strings.Trim(line, " \t")
}

// ParseUint reads a non-negative integer, e.g. a population.
func ParseUint(line string) (uint64, error) {
	s := strings.TrimPrefix(numberText(line), "+")
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &FieldError{Field: "uint", Message: msgUint, Err: err}
	}
	return v, nil
}

// ParseInt reads a signed integer.
func ParseInt(line string) (int, error) {
	v, err := strconv.ParseInt(numberText(line), 10, strconv.IntSize)
	if err != nil {
		return 0, &FieldError{Field: "int", Message: msgInt, Err: err}
	}
	return int(v), nil
}

// ParseFloat reads a finite real number written with a decimal point.
func ParseFloat(line string) (float64, error) {
	v, err := strconv.ParseFloat(numberText(line), 64)
	if err != nil {
		return 0, &FieldError{Field: "float", Message: msgFloat, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &FieldError{Field: "float", Message: msgFloat, Err: fmt.Errorf("%q is not finite", line)}
	}
	return v, nil
}

// ParseArea is ParseFloat plus the area > 0 rule, reported with its own
// message.
func ParseArea(line string) (float64, error) {
	v, err := ParseFloat(line)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, &FieldError{Field: "area", Message: msgArea, Err: fmt.Errorf("%v is not > 0", v)}
	}
	return v, nil
}
