// card/rule.go
package card

// Winner of one attribute. There is no tie: a tie goes to card 2.
const (
	Card1Wins = 1
	Card2Wins = 2
)

// Attribute labels, in the order they are compared.
const (
	LabelPopulation   = "Populacao"
	LabelArea         = "Area"
	LabelOutput       = "PIB"
	LabelTouristSpots = "Pontos Turisticos"
	LabelDensity      = "Densidade Populacional"
	LabelPerCapita    = "PIB per Capita"
	LabelSuperPower   = "Super Poder"
)

type attribute struct {
	label string
	// card1Wins reports whether card 1 takes the attribute.
	card1Wins func(c1, c2 *Card) bool
}

var attributes = []attribute{
	{LabelPopulation, func(c1, c2 *Card) bool { return c1.population > c2.population }},
	{LabelArea, func(c1, c2 *Card) bool { return c1.area > c2.area }},
	{LabelOutput, func(c1, c2 *Card) bool { return c1.output > c2.output }},
	{LabelTouristSpots, func(c1, c2 *Card) bool { return c1.touristSpots > c2.touristSpots }},
	// Densidade: menor vence
	{LabelDensity, func(c1, c2 *Card) bool { return c1.populationDensity < c2.populationDensity }},
	{LabelPerCapita, func(c1, c2 *Card) bool { return c1.outputPerCapita > c2.outputPerCapita }},
	{LabelSuperPower, func(c1, c2 *Card) bool { return c1.superPower > c2.superPower }},
}

// Outcome is the result of a single attribute comparison.
type Outcome struct {
	Attribute string
	Winner    int
}

// Indicator is 1 when card 1 won and 0 otherwise.
func (o Outcome) Indicator() int {
	if o.Winner == Card1Wins {
		return 1
	}
	return 0
}

// Compare plays card1 against card2 on every attribute, in a fixed order.
func Compare(card1, card2 *Card) []Outcome {
	outcomes := make([]Outcome, 0, len(attributes))
	for _, a := range attributes {
		winner := Card2Wins
		if a.card1Wins(card1, card2) {
			winner = Card1Wins
		}
		outcomes = append(outcomes, Outcome{Attribute: a.label, Winner: winner})
	}
	return outcomes
}

// labels returns the compared attributes in order.
func labels() []string {
	labels := make([]string, len(attributes))
	for i, a := range attributes {
		labels[i] = a.label
	}
	return labels
}
