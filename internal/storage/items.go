package storage

import (
	"context"
	"fmt"

	"github.com/apothecary-tools/apothecary/internal/model"
)

// SaveItems upserts items into the database.
func (s *SQLiteStorage) SaveItems(ctx context.Context, items []model.Item) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateItems(items); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO items (id, name, unit, quantity, amount, criticality)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			unit = excluded.unit,
			quantity = excluded.quantity,
			amount = excluded.amount,
			criticality = excluded.criticality
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, item := range items {
		if _, err := stmt.ExecContext(ctx,
			item.ID, item.Name, item.Unit, item.Quantity, item.Amount, string(item.Criticality)); err != nil {
			return fmt.Errorf("failed to save item %d: %w", item.ID, err)
		}
	}

	return tx.Commit()
}

// ReplaceItems deletes all stored items and saves the given batch in their
// place.
func (s *SQLiteStorage) ReplaceItems(ctx context.Context, items []model.Item) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateItems(items); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM items"); err != nil {
		return fmt.Errorf("failed to clear items: %w", err)
	}

	for _, item := range items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO items (id, name, unit, quantity, amount, criticality)
			VALUES (?, ?, ?, ?, ?, ?)
		`, item.ID, item.Name, item.Unit, item.Quantity, item.Amount, string(item.Criticality)); err != nil {
			return fmt.Errorf("failed to save item %d: %w", item.ID, err)
		}
	}

	return tx.Commit()
}

// ListItems returns all stored items ordered by id.
func (s *SQLiteStorage) ListItems(ctx context.Context) ([]model.Item, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, unit, quantity, amount, criticality
		FROM items
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]model.Item, 0)
	for rows.Next() {
		var item model.Item
		var criticality string
		if err := rows.Scan(&item.ID, &item.Name, &item.Unit, &item.Quantity, &item.Amount, &criticality); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		item.Criticality = model.Criticality(criticality)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return items, nil
}
