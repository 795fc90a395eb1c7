package card

// PIB is typed in billions, per capita is in reais.
const outputUnit = 1e9

// PopulationDensity is inhabitants per km2, or 0 for an empty city.
func PopulationDensity(population uint64, area float64) float64 {
	if population == 0 {
		return 0
	}
	return float64(population) / area
}

// OutputPerCapita is 0 for an empty city instead of a division by zero.
func OutputPerCapita(output float64, population uint64) float64 {
	if population == 0 {
		return 0
	}
	return (output * outputUnit) / float64(population)
}

// SuperPower sums the raw stats plus the inverse density, so a less crowded
// city scores higher. Units are mixed on purpose, it is a game score.
func SuperPower(c *Card) float64 {
	inverseDensity := 0.0
	if c.populationDensity > 0 {
		inverseDensity = 1 / c.populationDensity
	}

	return float64(c.population) +
		c.area +
		c.output +
		float64(c.touristSpots) +
		c.outputPerCapita +
		inverseDensity
}
