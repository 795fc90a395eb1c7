package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"supertrunfo/internal/game/card"

	"go.uber.org/zap"
)

// ErrEndOfInput means the player closed the input before every field of
// both cards was typed. It is fatal.
var ErrEndOfInput = errors.New("entrada encerrada")

// Collector asks for the fields of a card, one line per field, until each
// answer is valid.
type Collector struct {
	in     *bufio.Reader
	out    io.Writer
	logger *zap.Logger
}

func NewCollector(r io.Reader, w io.Writer, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{
		in:     bufio.NewReader(r),
		out:    w,
		logger: logger,
	}
}

// CollectCard registers card number index. It only returns a fully valid
// card, or an error (ErrEndOfInput when the input is exhausted).
func (c *Collector) CollectCard(index int) (*card.Card, error) {
	fmt.Fprintf(c.out, "=== Cadastro da Carta %d ===\n", index)

	var b card.Base
	var err error

	if b.State, err = readField(c, "state", "Estado (A a H): ", parseState); err != nil {
		return nil, err
	}
	codePrompt := fmt.Sprintf("Codigo da Carta (ex: %c01): ", b.State)
	if b.Code, err = readField(c, "code", codePrompt, codeParser(b.State)); err != nil {
		return nil, err
	}
	if b.CityName, err = readField(c, "city", "Nome da Cidade: ", parseCityName); err != nil {
		return nil, err
	}
	if b.Population, err = readField(c, "population", "Populacao: ", ParseUint); err != nil {
		return nil, err
	}
	if b.Area, err = readField(c, "area", "Area (km2): ", ParseArea); err != nil {
		return nil, err
	}
	// PIB negativo é aceito, só a área tem checagem de sinal.
	if b.Output, err = readField(c, "output", "PIB (em bilhoes de reais): ", ParseFloat); err != nil {
		return nil, err
	}
	if b.TouristSpots, err = readField(c, "tourist_spots", "Numero de Pontos Turisticos: ", ParseInt); err != nil {
		return nil, err
	}

	cd, err := card.New(b)
	if err != nil {
		return nil, fmt.Errorf("register card %d: %w", index, err)
	}

	c.logger.Info("card registered",
		zap.Int("index", index),
		zap.String("code", cd.Code()),
		zap.String("city", cd.CityName()),
	)
	return cd, nil
}

// readField is the retry loop shared by every field: prompt, parse, and
// either return the value or print why it was refused and ask again.
func readField[T any](c *Collector, field, prompt string, parse func(string) (T, error)) (T, error) {
	var zero T
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return zero, err
		}

		v, err := parse(line)
		if err == nil {
			return v, nil
		}

		var fe *FieldError
		if !errors.As(err, &fe) {
			return zero, err
		}
		c.logger.Debug("input rejected",
			zap.String("field", field),
			zap.String("input", line),
			zap.Error(err),
		)
		fmt.Fprintln(c.out, fe.Message)
	}
}

// readLine returns the next non-empty line without its line ending.
func (c *Collector) readLine(prompt string) (string, error) {
	for {
		fmt.Fprint(c.out, prompt)

		line, err := c.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if err != nil && line == "" {
			return "", ErrEndOfInput
		}

		line = strings.TrimRight(line, "\r\n")
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(c.out, msgEmpty)
	}
}
