package records

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/catboard/internal/common"
	"github.com/dmitrijs2005/catboard/internal/dbx"
	"github.com/dmitrijs2005/catboard/internal/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, collection string) ([]*models.Record, error) {
	query :=
		`SELECT id, collection, name, created_at FROM records
		 WHERE collection = $1
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Record, 0)
	for rows.Next() {
		item := &models.Record{}
		if err := rows.Scan(&item.ID, &item.Collection, &item.Name, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, collection string, name string) (*models.Record, error) {
	query :=
		`INSERT INTO records (id, collection, name, created_at)
		 VALUES ($1, $2, $3, $4)
		 `

	record := &models.Record{ID: newID(), Collection: collection, Name: name, CreatedAt: now()}

	if _, err := r.db.ExecContext(ctx, query, record.ID, record.Collection, record.Name, record.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return record, nil
}

func (r *PostgresRepository) Update(ctx context.Context, collection string, id string, fields Fields) error {
	query :=
		`UPDATE records SET name = COALESCE($3, name)
		 WHERE collection = $1 AND id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, collection, id, fields.Name)
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

func (r *PostgresRepository) Delete(ctx context.Context, collection string, id string) error {
	query := `DELETE FROM records WHERE collection = $1 AND id = $2`

	if _, err := r.db.ExecContext(ctx, query, collection, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
