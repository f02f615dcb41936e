package view

import (
	"context"

	"github.com/dmitrijs2005/catboard/internal/puzzle"
)

func (c *Controller) SetCell(name, value string) error {
	c.mu.Lock()
	err := c.state.Board.Set(name, value)
	c.mu.Unlock()

	if err != nil {
		return c.fail(context.Background(), "set cell", err)
	}
	return nil
}

func (c *Controller) Submit() puzzle.Outcome {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Board.Submit()
}

// Highlighted reports whether the cell currently matches its answer.
func (c *Controller) Highlighted(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Board.Matched(name)
}
