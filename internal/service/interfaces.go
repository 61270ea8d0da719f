// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"io"
	"time"

	"github.com/apothecary-tools/apothecary/internal/model"
)

// ItemStore defines the contract for the persistence layer.
type ItemStore interface {
	SaveItems(ctx context.Context, items []model.Item) error
	ReplaceItems(ctx context.Context, items []model.Item) error
	ListItems(ctx context.Context) ([]model.Item, error)
	SaveRun(ctx context.Context, items []model.ClassifiedItem) (int64, error)
	GetLatestRun(ctx context.Context) (*Run, error)
	Close() error
}

// Run is a persisted classification snapshot.
type Run struct {
	CreatedAt   time.Time
	Items       []model.ClassifiedItem
	ID          int64
	TotalAmount float64
}

// RecordParser reads priced inventory records from an external delimited
// representation. Malformed rows are skipped, never returned.
type RecordParser interface {
	Parse(ctx context.Context, r io.Reader) ([]model.Item, error)
}
