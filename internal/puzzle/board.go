// Package puzzle is a 3x3 grid where four blank cells must be filled to
// match an answer key.
package puzzle

import (
	"errors"
	"fmt"
)

// Outcome is the result of Submit.
type Outcome string

const (
	Win  Outcome = "win"
	Lose Outcome = "lose"
)

var (
	ErrUnknownCell = errors.New("unknown cell")
	ErrFixedCell   = errors.New("cell is not editable")
)

// CellNames lists the grid in row-major order.
var CellNames = [9]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

var fixed = map[string]string{
	"two":   "1",
	"three": "8",
	"four":  "3",
	"seven": "9",
	"eight": "7",
}

var answers = map[string]string{
	"one":  "6",
	"five": "5",
	"six":  "4",
	"nine": "2",
}

// answerOrder is the order Submit walks the key in.
var answerOrder = []string{"one", "five", "six", "nine"}

// Cell is one square as rendered.
type Cell struct {
	Name     string
	Value    string
	Editable bool
	Matched  bool
}

// Board holds the editable values. The zero value is not usable; call
// NewBoard.
type Board struct {
	values map[string]string
}

func NewBoard() *Board {
	b := &Board{values: make(map[string]string, len(answers))}
	for name := range answers {
		b.values[name] = ""
	}
	return b
}

// Set stores value in an editable cell. Values are not validated.
func (b *Board) Set(cell, value string) error {
	if _, ok := answers[cell]; ok {
		b.values[cell] = value
		return nil
	}
	if _, ok := fixed[cell]; ok {
		return fmt.Errorf("%w: %s", ErrFixedCell, cell)
	}
	return fmt.Errorf("%w: %s", ErrUnknownCell, cell)
}

// Value returns what the cell shows.
func (b *Board) Value(cell string) (string, error) {
	if v, ok := fixed[cell]; ok {
		return v, nil
	}
	if v, ok := b.values[cell]; ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownCell, cell)
}

// Matched reports whether an editable cell currently equals its answer.
// It is independent of Submit.
func (b *Board) Matched(cell string) bool {
	want, ok := answers[cell]
	return ok && b.values[cell] == want
}

// Submit checks the answers in a fixed order and stops at the first
// mismatch.
func (b *Board) Submit() Outcome {
	for _, name := range answerOrder {
		if b.values[name] != answers[name] {
			return Lose
		}
	}
	return Win
}

// Cells returns the grid in row-major order.
func (b *Board) Cells() []Cell {
	out := make([]Cell, 0, len(CellNames))
	for _, name := range CellNames {
		v, _ := b.Value(name)
		_, editable := answers[name]
		out = append(out, Cell{
			Name:     name,
			Value:    v,
			Editable: editable,
			Matched:  b.Matched(name),
		})
	}
	return out
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	c := &Board{values: make(map[string]string, len(b.values))}
	for k, v := range b.values {
		c.values[k] = v
	}
	return c
}
