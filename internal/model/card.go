package model

// CardKind distinguishes how a card face is rendered
type CardKind string

const (
	CardKindText  CardKind = "text"  // Token is displayed literally
	CardKindImage CardKind = "image" // Token is an image URL
)

// ThemeItem is a single face value drawn from a theme pack
type ThemeItem struct {
	Token string
	Kind  CardKind
}

// Card is one face-down slot in a deck
type Card struct {
	ID      int
	Token   string
	Kind    CardKind
	Matched bool
}

// Deck is an ordered sequence of 2N cards for N pairs.
// Invariant: every token appears in exactly two cards.
type Deck []Card

// PairCount returns the number of pairs in the deck
func (d Deck) PairCount() int {
	return len(d) / 2
}
