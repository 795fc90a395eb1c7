package match

import (
	"fmt"

	"supertrunfo/internal/game/card"

	"github.com/google/uuid"
)

// Match is one round of Super Trunfo between two registered cards.
type Match struct {
	ID       string
	Card1    *card.Card
	Card2    *card.Card
	Outcomes []card.Outcome
}

// New resolves every attribute of card1 against card2.
func New(card1, card2 *card.Card) (*Match, error) {
	if card1 == nil || card2 == nil {
		return nil, fmt.Errorf("match needs two cards")
	}
	return &Match{
		ID:       uuid.NewString(),
		Card1:    card1,
		Card2:    card2,
		Outcomes: card.Compare(card1, card2),
	}, nil
}

// Wins counts how many attributes each card took.
func (m *Match) Wins() (card1, card2 int) {
	for _, o := range m.Outcomes {
		if o.Winner == card.Card1Wins {
			card1++
		} else {
			card2++
		}
	}
	return card1, card2
}
