package core

import "time"

type Entry struct {
	ID          int64     `db:"id" json:"id"`
	Category    string    `db:"category" json:"category"`
	Minutes     int64     `db:"minutes" json:"minutes"`
	Description string    `db:"description" json:"description"`
	Timestamp   time.Time `db:"timestamp" json:"timestamp"`
}

// NewEntry is the input of AddEntry. Nil Timestamp means "now" by the service clock.
type NewEntry struct {
	Category    string
	Minutes     int64
	Description string
	Timestamp   *time.Time
}

type EntryUpdate struct {
	Category    string
	Minutes     int64
	Description string
}

// Stats holds total minutes per category for the current week and month.
type Stats struct {
	Week       map[string]int64 `json:"week"`
	Month      map[string]int64 `json:"month"`
	WeekStart  time.Time        `json:"week_start"`
	MonthStart time.Time        `json:"month_start"`
}
