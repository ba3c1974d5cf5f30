// Package model defines shared data structures.
package model

import "time"

// Mode selects the content source used to fill the practice lines.
type Mode int

const (
	// ModeASCII practices random printable characters.
	ModeASCII Mode = iota
	// ModeWords practices random words from the word list.
	ModeWords
	// ModeText practices a text corpus in order.
	ModeText
)

// Next returns the mode that follows m in the ASCII -> Words -> Text cycle.
func (m Mode) Next() Mode {
	switch m {
	case ModeASCII:
		return ModeWords
	case ModeWords:
		return ModeText
	default:
		return ModeASCII
	}
}

func (m Mode) String() string {
	switch m {
	case ModeASCII:
		return "ASCII"
	case ModeWords:
		return "Words"
	case ModeText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Status tags a single target character.
type Status int

const (
	// Untyped marks a character the user has not reached yet.
	Untyped Status = iota
	// Correct marks a character typed as expected.
	Correct
	// Incorrect marks a mistyped character.
	Incorrect
)

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

// Mistake is one mistake ledger entry keyed by the expected character.
type Mistake struct {
	Char  string
	Count int
}

// SessionStats captures one practice run.
type SessionStats struct {
	StartedAt         time.Time
	EndedAt           time.Time
	Mode              Mode
	CorrectNonSpace   int
	IncorrectNonSpace int
	DurationMs        int64
}

// CharStats stores per-character stats for a session.
type CharStats struct {
	Char      string
	Correct   int
	Incorrect int
}

// SessionAggregate summarizes a stored session for reporting.
type SessionAggregate struct {
	SessionID  int64
	EndedAt    time.Time
	Mode       Mode
	Correct    int
	Incorrect  int
	DurationMs int64
}

// CharAggregate aggregates character stats across sessions.
type CharAggregate struct {
	Char      string
	Correct   int
	Incorrect int
}
