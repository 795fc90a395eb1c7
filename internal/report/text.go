package report

import (
	"fmt"
	"io"

	"supertrunfo/internal/game/card"
	"supertrunfo/internal/game/match"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const separator = "\n==============================\n"

type printfFunc func(w io.Writer, format string, a ...any)

func plainPrintf(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, format, a...)
}

// localePrintf formats numbers with the decimal and grouping marks of tag,
// e.g. 1.521,11 for pt-BR.
func localePrintf(tag language.Tag) printfFunc {
	p := message.NewPrinter(tag)
	return func(w io.Writer, format string, a ...any) {
		p.Fprintf(w, format, a...)
	}
}

type textRenderer struct {
	printf printfFunc
}

func (r textRenderer) Render(w io.Writer, m *match.Match) error {
	r.card(w, 1, m.Card1)
	r.card(w, 2, m.Card2)

	fmt.Fprint(w, separator)
	fmt.Fprint(w, "Comparacao de Cartas:\n\n")
	for _, o := range m.Outcomes {
		fmt.Fprintf(w, "%s: Carta %d venceu (%d)\n", o.Attribute, o.Winner, o.Indicator())
	}
	return nil
}

func (r textRenderer) card(w io.Writer, index int, c *card.Card) {
	fmt.Fprint(w, separator)
	fmt.Fprintf(w, "Carta %d:\n", index)
	fmt.Fprintf(w, "Estado: %c\n", c.State())
	fmt.Fprintf(w, "Codigo: %s\n", c.Code())
	fmt.Fprintf(w, "Nome da Cidade: %s\n", c.CityName())
	r.printf(w, "Populacao: %d\n", c.Population())
	r.printf(w, "Area: %.2f km2\n", c.Area())
	r.printf(w, "PIB: %.2f bilhoes de reais\n", c.Output())
	r.printf(w, "Numero de Pontos Turisticos: %d\n", c.TouristSpots())
	r.printf(w, "Densidade Populacional: %.2f hab/km2\n", c.PopulationDensity())
	r.printf(w, "PIB per Capita: %.2f reais\n", c.OutputPerCapita())
	r.printf(w, "Super Poder: %.2f\n", c.SuperPower())
}
