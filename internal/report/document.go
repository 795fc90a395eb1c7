package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"supertrunfo/internal/game/card"
	"supertrunfo/internal/game/match"

	"gopkg.in/yaml.v3"
)

// MessageMatchResult is the envelope type of a JSON report.
const MessageMatchResult = "MATCH_RESULT"

// Message is the envelope of a JSON report. Payload holds a Document.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Document is the machine readable form of a match.
type Document struct {
	MatchID  string       `json:"match_id" yaml:"match_id"`
	Cards    []CardDoc    `json:"cards" yaml:"cards"`
	Outcomes []OutcomeDoc `json:"outcomes" yaml:"outcomes"`
}

type CardDoc struct {
	Index             int     `json:"index" yaml:"index"`
	State             string  `json:"state" yaml:"state"`
	Code              string  `json:"code" yaml:"code"`
	CityName          string  `json:"city_name" yaml:"city_name"`
	Population        uint64  `json:"population" yaml:"population"`
	Area              Number  `json:"area" yaml:"area"`
	Output            Number  `json:"output" yaml:"output"`
	TouristSpots      int     `json:"tourist_spots" yaml:"tourist_spots"`
	PopulationDensity Number  `json:"population_density" yaml:"population_density"`
	OutputPerCapita   Number  `json:"output_per_capita" yaml:"output_per_capita"`
	SuperPower        Number  `json:"super_power" yaml:"super_power"`
}

// Number is a stat in a JSON report. Huge inputs can push derived stats to
// infinity, which JSON has no literal for, so non-finite values are written
// as the strings "+Inf", "-Inf" and "NaN".
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func (n *Number) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Number(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("number: %w", err)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("number: %w", err)
	}
	*n = Number(f)
	return nil
}

type OutcomeDoc struct {
	Attribute string `json:"attribute" yaml:"attribute"`
	Winner    int    `json:"winner" yaml:"winner"`
	Indicator int    `json:"indicator" yaml:"indicator"`
}

func NewDocument(m *match.Match) Document {
	doc := Document{
		MatchID: m.ID,
		Cards:   []CardDoc{cardDoc(1, m.Card1), cardDoc(2, m.Card2)},
	}
	for _, o := range m.Outcomes {
		doc.Outcomes = append(doc.Outcomes, OutcomeDoc{
			Attribute: o.Attribute,
			Winner:    o.Winner,
			Indicator: o.Indicator(),
		})
	}
	return doc
}

func cardDoc(index int, c *card.Card) CardDoc {
	return CardDoc{
		Index:             index,
		State:             string(c.State()),
		Code:              c.Code(),
		CityName:          c.CityName(),
		Population:        c.Population(),
		Area:              Number(c.Area()),
		Output:            Number(c.Output()),
		TouristSpots:      c.TouristSpots(),
		PopulationDensity: Number(c.PopulationDensity()),
		OutputPerCapita:   Number(c.OutputPerCapita()),
		SuperPower:        Number(c.SuperPower()),
	}
}

type jsonRenderer struct{}

func (jsonRenderer) Render(w io.Writer, m *match.Match) error {
	payload, err := json.Marshal(NewDocument(m))
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	msg := Message{Type: MessageMatchResult, Payload: payload}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(msg); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}
	return nil
}

type yamlRenderer struct{}

func (yamlRenderer) Render(w io.Writer, m *match.Match) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(m)); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}
	return enc.Close()
}
