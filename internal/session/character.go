package session

// Status is the typing state of one target character.
type Status int

const (
	// Untyped means the cursor has not reached the character yet, or it is
	// the current position without any attempt.
	Untyped Status = iota
	// Correct means the expected key was pressed at this position.
	Correct
	// Incorrect means at least one wrong key was pressed here and the
	// expected key has not followed yet.
	Incorrect
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Untyped:
		return "untyped"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// Character pairs a target rune with its typing status.
type Character struct {
	Char   rune
	Status Status
}

// Token is a semantic color name. The UI maps tokens to actual colors.
type Token string

const (
	TokenPending   Token = "pending"
	TokenCorrect   Token = "correct"
	TokenIncorrect Token = "incorrect"
)

// ColorFor maps a status to its color token.
func ColorFor(s Status) Token {
	switch s {
	case Correct:
		return TokenCorrect
	case Incorrect:
		return TokenIncorrect
	default:
		return TokenPending
	}
}

// SpaceGlyph is shown in place of the word separator.
const SpaceGlyph = '_'

// DisplayRune returns the rune to draw for a target character.
func DisplayRune(r rune) rune {
	if r == ' ' {
		return SpaceGlyph
	}
	return r
}
