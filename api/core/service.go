package core

import (
	"context"
	"time"
)

type Service struct {
	db        DB
	now       Clock
	loc       *time.Location
	weekStart time.Weekday
}

type Option func(*Service)

func WithClock(c Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.now = c
		}
	}
}

func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithWeekStart(d time.Weekday) Option {
	return func(s *Service) {
		s.weekStart = d
	}
}

func NewService(db DB, opts ...Option) *Service {
	s := &Service{
		db:        db,
		now:       time.Now,
		loc:       time.Local,
		weekStart: time.Sunday,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location is the zone used for stats windows and zone-less timestamps.
func (s *Service) Location() *time.Location {
	return s.loc
}

func (s *Service) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Service) AddEntry(ctx context.Context, in NewEntry) (Entry, error) {
	category, err := cleanCategory(in.Category)
	if err != nil {
		return Entry{}, err
	}
	description, err := cleanDescription(in.Description)
	if err != nil {
		return Entry{}, err
	}

	ts := s.now()
	if in.Timestamp != nil {
		if in.Timestamp.IsZero() {
			return Entry{}, fieldErr("timestamp", "is zero")
		}
		ts = *in.Timestamp
	}

	e, err := s.db.CreateEntry(ctx, Entry{
		Category:    category,
		Minutes:     in.Minutes,
		Description: description,
		Timestamp:   ts,
	})
	if err != nil {
		return Entry{}, err
	}
	return s.local(e), nil
}

func (s *Service) GetEntry(ctx context.Context, id int64) (Entry, error) {
	if id <= 0 {
		return Entry{}, fieldErr("id", "must be positive")
	}
	e, err := s.db.GetEntry(ctx, id)
	if err != nil {
		return Entry{}, err
	}
	return s.local(e), nil
}

// ListEntries returns entries newest first. A blank Search lists everything.
func (s *Service) ListEntries(ctx context.Context, f ListEntriesFilter) ([]Entry, error) {
	f.Search = NormalizeSearch(f.Search)
	items, err := s.db.ListEntries(ctx, f)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Entry{}
	}
	for i := range items {
		items[i] = s.local(items[i])
	}
	return items, nil
}

// UpdateEntry overwrites category, minutes and description. Id and timestamp never change.
func (s *Service) UpdateEntry(ctx context.Context, id int64, u EntryUpdate) (Entry, error) {
	if id <= 0 {
		return Entry{}, fieldErr("id", "must be positive")
	}

	category, err := cleanCategory(u.Category)
	if err != nil {
		return Entry{}, err
	}
	description, err := cleanDescription(u.Description)
	if err != nil {
		return Entry{}, err
	}

	e, err := s.db.UpdateEntry(ctx, id, EntryUpdate{
		Category:    category,
		Minutes:     u.Minutes,
		Description: description,
	})
	if err != nil {
		return Entry{}, err
	}
	return s.local(e), nil
}

func (s *Service) local(e Entry) Entry {
	e.Timestamp = e.Timestamp.In(s.loc)
	return e
}

func (s *Service) DeleteAll(ctx context.Context) (int64, error) {
	return s.db.DeleteAllEntries(ctx)
}

// Stats sums minutes per category since the start of the current week and month.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	weekStart, monthStart := Windows(s.now(), s.loc, s.weekStart)

	week, err := s.db.SumMinutesByCategory(ctx, weekStart)
	if err != nil {
		return Stats{}, err
	}
	month, err := s.db.SumMinutesByCategory(ctx, monthStart)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		Week:       nonNil(week),
		Month:      nonNil(month),
		WeekStart:  weekStart,
		MonthStart: monthStart,
	}, nil
}

func nonNil(m map[string]int64) map[string]int64 {
	if m == nil {
		return map[string]int64{}
	}
	return m
}
