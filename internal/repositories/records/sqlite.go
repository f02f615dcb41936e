package records

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/catboard/internal/common"
	"github.com/dmitrijs2005/catboard/internal/dbx"
	"github.com/dmitrijs2005/catboard/internal/models"
)

// SQLiteRepository implements Repository on an embedded SQLite database.
// created_at is kept as unix nanoseconds.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) List(ctx context.Context, collection string) ([]*models.Record, error) {
	query := `SELECT id, collection, name, created_at FROM records WHERE collection = ? ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Record, 0)
	for rows.Next() {
		var (
			item    models.Record
			created int64
		)
		if err := rows.Scan(&item.ID, &item.Collection, &item.Name, &created); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		item.CreatedAt = time.Unix(0, created).UTC()
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, collection string, name string) (*models.Record, error) {
	query := `INSERT INTO records (id, collection, name, created_at) VALUES (?, ?, ?, ?)`

	record := &models.Record{ID: newID(), Collection: collection, Name: name, CreatedAt: now()}

	if _, err := r.db.ExecContext(ctx, query, record.ID, record.Collection, record.Name, record.CreatedAt.UnixNano()); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return record, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, collection string, id string, fields Fields) error {
	query := `UPDATE records SET name = COALESCE(?, name) WHERE collection = ? AND id = ?`

	res, err := r.db.ExecContext(ctx, query, fields.Name, collection, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, collection string, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE collection = ? AND id = ?`, collection, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
