package tests

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"time-tracker/api/core"
)

type fakeDB struct {
	mu sync.RWMutex

	nextID  int64
	entries map[int64]core.Entry

	pingErr error
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		nextID:  1,
		entries: make(map[int64]core.Entry),
	}
}

func (db *fakeDB) Ping(context.Context) error {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.pingErr
}

func (db *fakeDB) setPingErr(err error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.pingErr = err
}

func (db *fakeDB) CreateEntry(_ context.Context, e core.Entry) (core.Entry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	e.ID = db.nextID
	db.nextID++
	e.Timestamp = e.Timestamp.UTC()
	db.entries[e.ID] = e

	return e, nil
}

func (db *fakeDB) GetEntry(_ context.Context, id int64) (core.Entry, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	e, ok := db.entries[id]
	if !ok {
		return core.Entry{}, core.ErrNotFound
	}
	return e, nil
}

func (db *fakeDB) ListEntries(_ context.Context, f core.ListEntriesFilter) ([]core.Entry, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	q := strings.ToLower(f.Search)
	out := make([]core.Entry, 0, len(db.entries))
	for _, e := range db.entries {
		if q != "" &&
			!strings.Contains(strings.ToLower(e.Category), q) &&
			!strings.Contains(strings.ToLower(e.Description), q) {
			continue
		}
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (db *fakeDB) UpdateEntry(_ context.Context, id int64, u core.EntryUpdate) (core.Entry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	e, ok := db.entries[id]
	if !ok {
		return core.Entry{}, core.ErrNotFound
	}
	e.Category = u.Category
	e.Minutes = u.Minutes
	e.Description = u.Description
	db.entries[id] = e

	return e, nil
}

func (db *fakeDB) DeleteAllEntries(context.Context) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	n := int64(len(db.entries))
	db.entries = make(map[int64]core.Entry)
	return n, nil
}

func (db *fakeDB) SumMinutesByCategory(_ context.Context, since time.Time) (map[string]int64, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := make(map[string]int64)
	for _, e := range db.entries {
		if e.Timestamp.Before(since) {
			continue
		}
		out[e.Category] += e.Minutes
	}
	return out, nil
}

func (db *fakeDB) count() int {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return len(db.entries)
}
