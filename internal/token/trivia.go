package token

import "rlekit/internal/source"

// TriviaKind classifies non-semantic input between tokens.
type TriviaKind uint8

const (
	// TriviaSpace is a run of spaces and tabs.
	TriviaSpace TriviaKind = iota
	// TriviaNewline is a run of consecutive newlines (blank lines included).
	TriviaNewline
	// TriviaComment is a plain '#' comment line (not '#CXRLE').
	TriviaComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaComment:
		return "Comment"
	}
	return "Unknown"
}

// Trivia is one piece of discardable input attached to the following token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
