package card

import (
	"fmt"
	"sort"
)

// Each state has four cards, A01..A04 up to H01..H04.
const CardsPerState = 4

var allCodes = buildCatalog()

func buildCatalog() map[string]struct{} {
	codes := make(map[string]struct{})
	for s := byte(FirstState); s <= LastState; s++ {
		for n := 1; n <= CardsPerState; n++ {
			codes[codeKey(s, n)] = struct{}{}
		}
	}
	return codes
}

func codeKey(state byte, number int) string {
	return fmt.Sprintf("%c%02d", state, number)
}

// IsValidCode reports whether code names one of the 32 cards of the deck.
func IsValidCode(code string) bool {
	_, ok := allCodes[code]
	return ok
}

// codes returns every card code of the deck, sorted.
func codes() []string {
	sorted := make([]string, 0, len(allCodes))
	for c := range allCodes {
		sorted = append(sorted, c)
	}
	sort.Strings(sorted)
	return sorted
}
