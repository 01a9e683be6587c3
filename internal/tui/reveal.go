package tui

// reveal is a cooperative generator that yields successive prefixes of
// an assistant response, one rune per step. The chat panel drives it
// from timer ticks so a response appears character by character.
type reveal struct {
	// index of the assistant message being revealed in the conversation
	index  int
	target []rune
	pos    int
}

// newReveal prepares a reveal of text into the message at index.
func newReveal(index int, text string) *reveal {
	return &reveal{
		index:  index,
		target: []rune(text),
	}
}

// advance appends one more rune and returns the resulting prefix and
// whether the reveal is complete. Each prefix strictly extends the
// previous one.
func (r *reveal) advance() (string, bool) {
	if r.pos < len(r.target) {
		r.pos++
	}
	return string(r.target[:r.pos]), r.pos >= len(r.target)
}

// full returns the complete target text.
func (r *reveal) full() string {
	return string(r.target)
}

// done reports whether all runes have been revealed.
func (r *reveal) done() bool {
	return r.pos >= len(r.target)
}
