package card

import (
	"fmt"
)

// Base holds the fields a player types in. Derived stats are never part of it.
type Base struct {
	State        byte
	Code         string
	CityName     string
	Population   uint64
	Area         float64 // km2
	Output       float64 // PIB, bilhoes de reais
	TouristSpots int
}

type Card struct {
	state        byte
	code         string
	cityName     string
	population   uint64
	area         float64
	output       float64
	touristSpots int

	populationDensity float64
	outputPerCapita   float64
	superPower        float64
}

func (c *Card) State() byte { return c.state }
func (c *Card) Code() string { return c.code }
func (c *Card) CityName() string { return c.cityName }
func (c *Card) Population() uint64 { return c.population }
func (c *Card) Area() float64 { return c.area }
func (c *Card) Output() float64 { return c.output }
func (c *Card) TouristSpots() int { return c.touristSpots }
func (c *Card) PopulationDensity() float64 { return c.populationDensity }
func (c *Card) OutputPerCapita() float64 { return c.outputPerCapita }
func (c *Card) SuperPower() float64 { return c.superPower }

// ---- Construtor ----

// New validates the base fields and computes the derived stats once.
// The returned card is read-only.
func New(b Base) (*Card, error) {
	card := &Card{
		state:        b.State,
		code:         b.Code,
		cityName:     b.CityName,
		population:   b.Population,
		area:         b.Area,
		output:       b.Output,
		touristSpots: b.TouristSpots,
	}

	validators := []cardValidator{
		validateState,
		validateCode,
		validateCityName,
		validateArea,
	}

	for _, v := range validators {
		if err := v(card); err != nil {
			return nil, err
		}
	}

	card.populationDensity = PopulationDensity(card.population, card.area)
	card.outputPerCapita = OutputPerCapita(card.output, card.population)
	card.superPower = SuperPower(card)

	return card, nil
}

func (c *Card) String() string {
	return fmt.Sprintf("%s (%s)", c.code, c.cityName)
}
