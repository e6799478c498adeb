package core

import "context"

// Tracker is the server as seen by the terminal views and commands.
type Tracker interface {
	AddEntry(ctx context.Context, f EntryForm) (Entry, error)
	ListEntries(ctx context.Context, search string) ([]Entry, error)
	GetEntry(ctx context.Context, id int64) (Entry, error)
	UpdateEntry(ctx context.Context, id int64, f EntryForm) (Entry, error)
	DeleteAll(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (Stats, error)
	Health(ctx context.Context) (Health, error)
}
