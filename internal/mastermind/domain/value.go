package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

type (
	GameID string

	// Peg is a single guessable symbol, compared by name.
	Peg struct {
		name string
	}

	// Code is an immutable ordered sequence of pegs, used both as a secret and as a guess.
	Code struct {
		pegs []Peg
	}

	PegSet map[Peg]struct{}

	Outcome string
	Mark    string

	Feedback struct {
		Outcome Outcome `json:"outcome"`
		Marks   []Mark  `json:"marks"`
	}

	Guess struct {
		Code     Code     `json:"code"`
		Feedback Feedback `json:"feedback"`
	}
)

const (
	OutcomeInProgress Outcome = "IN_PROGRESS"
	OutcomeWon        Outcome = "WON"
	OutcomeLost       Outcome = "LOST"

	MarkBlack Mark = "BLACK"
	MarkWhite Mark = "WHITE"
)

func (id GameID) String() string {
	return string(id)
}

func NewPeg(name string) Peg {
	return Peg{name: name}
}

func (p Peg) Name() string {
	return p.name
}

func (p Peg) String() string {
	return p.name
}

func (p Peg) MarshalText() ([]byte, error) {
	return []byte(p.name), nil
}

func (p *Peg) UnmarshalText(text []byte) error {
	p.name = string(text)
	return nil
}

func NewCode(pegs ...Peg) Code {
	return Code{pegs: slices.Clone(pegs)}
}

// CodeOf builds a code from raw peg names.
func CodeOf(names ...string) Code {
	if len(names) == 0 {
		return Code{}
	}

	pegs := make([]Peg, 0, len(names))
	for _, name := range names {
		pegs = append(pegs, NewPeg(name))
	}

	return Code{pegs: pegs}
}

func (c Code) Pegs() []Peg {
	return slices.Clone(c.pegs)
}

func (c Code) Length() int {
	return len(c.pegs)
}

func (c Code) Equal(other Code) bool {
	return slices.Equal(c.pegs, other.pegs)
}

func (c Code) Names() []string {
	names := make([]string, 0, len(c.pegs))
	for _, peg := range c.pegs {
		names = append(names, peg.name)
	}

	return names
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]", strings.Join(c.Names(), " "))
}

func (c Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Names())
}

func (c *Code) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return fmt.Errorf("decode code: %w", err)
	}

	*c = CodeOf(names...)
	return nil
}

func NewPegSet(pegs ...Peg) PegSet {
	set := make(PegSet, len(pegs))
	for _, peg := range pegs {
		set[peg] = struct{}{}
	}

	return set
}

func PegSetOf(names ...string) PegSet {
	set := make(PegSet, len(names))
	for _, name := range names {
		set[NewPeg(name)] = struct{}{}
	}

	return set
}

func (s PegSet) Contains(peg Peg) bool {
	_, ok := s[peg]
	return ok
}

// Pegs returns the set members ordered by name.
func (s PegSet) Pegs() []Peg {
	pegs := make([]Peg, 0, len(s))
	for peg := range s {
		pegs = append(pegs, peg)
	}
	slices.SortFunc(pegs, func(a, b Peg) int {
		return strings.Compare(a.name, b.name)
	})

	return pegs
}

func (s PegSet) Names() []string {
	return NewCode(s.Pegs()...).Names()
}

func (s PegSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

func (s *PegSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return fmt.Errorf("decode peg set: %w", err)
	}

	*s = PegSetOf(names...)
	return nil
}

func NewFeedback(outcome Outcome, marks ...Mark) Feedback {
	if len(marks) == 0 {
		return Feedback{Outcome: outcome}
	}

	return Feedback{
		Outcome: outcome,
		Marks:   slices.Clone(marks),
	}
}

func (f Feedback) Equal(other Feedback) bool {
	return f.Outcome == other.Outcome && slices.Equal(f.Marks, other.Marks)
}

func (f Feedback) BlackMarks() int {
	return f.count(MarkBlack)
}

func (f Feedback) WhiteMarks() int {
	return f.count(MarkWhite)
}

func (f Feedback) count(mark Mark) int {
	var result int
	for _, m := range f.Marks {
		if m == mark {
			result++
		}
	}

	return result
}
