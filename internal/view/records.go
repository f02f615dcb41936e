package view

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/catboard/internal/common"
	"github.com/dmitrijs2005/catboard/internal/models"
)

// SetNewName stores the pending input for the next CreateRecord.
func (c *Controller) SetNewName(name string) {
	c.mu.Lock()
	c.state.NewName = name
	c.mu.Unlock()
}

// ListRecords fetches the whole collection and replaces the local list.
func (c *Controller) ListRecords(ctx context.Context) ([]models.Record, error) {
	recs, err := c.records.List(ctx)
	if err != nil {
		return nil, c.fail(ctx, "list records", err)
	}

	c.mu.Lock()
	c.state.Records = recs
	c.mu.Unlock()

	return append([]models.Record(nil), recs...), nil
}

// CreateRecord inserts name as is, clears the pending input and re-fetches.
func (c *Controller) CreateRecord(ctx context.Context, name string) error {
	id, err := c.records.Insert(ctx, name)
	if err != nil {
		return c.fail(ctx, "create record", err)
	}
	c.logger.Info(ctx, "record created", "id", id)

	c.mu.Lock()
	c.state.NewName = ""
	c.mu.Unlock()

	_, err = c.ListRecords(ctx)
	return err
}

// RenameRecord stores name with its first character upper-cased.
func (c *Controller) RenameRecord(ctx context.Context, id, name string) error {
	if name == "" {
		return c.fail(ctx, "rename record", common.ErrEmptyName)
	}

	if err := c.records.UpdateName(ctx, id, capitalize(name)); err != nil {
		return c.fail(ctx, "rename record", err)
	}
	c.logger.Info(ctx, "record renamed", "id", id)

	_, err := c.ListRecords(ctx)
	return err
}

func (c *Controller) DeleteRecord(ctx context.Context, id string) error {
	if err := c.records.Delete(ctx, id); err != nil {
		return c.fail(ctx, "delete record", err)
	}
	c.logger.Info(ctx, "record deleted", "id", id)

	_, err := c.ListRecords(ctx)
	return err
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteRune(unicode.ToUpper(r))
	b.WriteString(s[size:])
	return b.String()
}
