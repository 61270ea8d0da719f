package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/apothecary-tools/apothecary/internal/common"
	"github.com/apothecary-tools/apothecary/internal/model"
	"github.com/apothecary-tools/apothecary/internal/service"
)

// SaveRun persists a classification snapshot and returns its run id. The
// items are stored in classification order so the snapshot round-trips the
// descending-amount sequence exactly.
func (s *SQLiteStorage) SaveRun(ctx context.Context, items []model.ClassifiedItem) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if items == nil {
		return 0, fmt.Errorf("%w: items", ErrNilParameter)
	}

	var totalAmount float64
	for _, item := range items {
		totalAmount += item.Amount
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO analysis_runs (item_count, total_amount) VALUES (?, ?)
	`, len(items), totalAmount)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO run_items (
			run_id, position, item_id, name, unit, quantity, amount,
			criticality, tier, percent_of_total, cumulative_percent
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for position, item := range items {
		if _, err := stmt.ExecContext(ctx,
			runID, position, item.ID, item.Name, item.Unit, item.Quantity, item.Amount,
			string(item.Criticality), string(item.Tier), item.PercentOfTotal, item.CumulativePercent); err != nil {
			return 0, fmt.Errorf("failed to save run item %d: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}

	return runID, nil
}

// GetLatestRun returns the most recent classification snapshot, or
// common.ErrNotFound when no run has been saved yet.
func (s *SQLiteStorage) GetLatestRun(ctx context.Context) (*service.Run, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	run := &service.Run{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, total_amount
		FROM analysis_runs
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&run.ID, &run.CreatedAt, &run.TotalAmount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest run: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT item_id, name, unit, quantity, amount, criticality, tier,
		       percent_of_total, cumulative_percent
		FROM run_items
		WHERE run_id = ?
		ORDER BY position
	`, run.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query run items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	run.Items = make([]model.ClassifiedItem, 0)
	for rows.Next() {
		var item model.ClassifiedItem
		var criticality, tier string
		if err := rows.Scan(&item.ID, &item.Name, &item.Unit, &item.Quantity, &item.Amount,
			&criticality, &tier, &item.PercentOfTotal, &item.CumulativePercent); err != nil {
			return nil, fmt.Errorf("failed to scan run item: %w", err)
		}
		item.Criticality = model.Criticality(criticality)
		item.Tier = model.Tier(tier)
		run.Items = append(run.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate run items: %w", err)
	}

	return run, nil
}
