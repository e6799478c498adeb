package core

import (
	"context"
	"time"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// DB is the storage port. Implementations return ErrNotFound for unknown ids.
type DB interface {
	Pinger

	CreateEntry(ctx context.Context, e Entry) (Entry, error)
	GetEntry(ctx context.Context, id int64) (Entry, error)
	ListEntries(ctx context.Context, f ListEntriesFilter) ([]Entry, error)
	UpdateEntry(ctx context.Context, id int64, u EntryUpdate) (Entry, error)
	DeleteAllEntries(ctx context.Context) (int64, error)

	// SumMinutesByCategory totals minutes per category over entries with timestamp >= since.
	SumMinutesByCategory(ctx context.Context, since time.Time) (map[string]int64, error)
}

// Entries is the use-case port consumed by the transport adapters.
type Entries interface {
	Pinger

	AddEntry(ctx context.Context, in NewEntry) (Entry, error)
	GetEntry(ctx context.Context, id int64) (Entry, error)
	ListEntries(ctx context.Context, f ListEntriesFilter) ([]Entry, error)
	UpdateEntry(ctx context.Context, id int64, u EntryUpdate) (Entry, error)
	DeleteAll(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (Stats, error)
	Location() *time.Location
}

type Deps struct {
	Entries Entries
	Now     Clock
}

var _ Entries = (*Service)(nil)
