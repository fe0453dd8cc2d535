package model

// Deck is the top-level output of the engine: an ordered sequence of
// positioned, paginated slides.
type Deck struct {
	Slides []*Slide
}

// NewDeck allocates an empty Deck.
func NewDeck() *Deck {
	return &Deck{}
}

// Append adds a slide to the end of the deck.
func (d *Deck) Append(s *Slide) {
	d.Slides = append(d.Slides, s)
}

// Len returns the number of slides currently in the deck.
func (d *Deck) Len() int {
	return len(d.Slides)
}
