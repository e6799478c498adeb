package core

import "time"

type Entry struct {
	ID          int64     `json:"id"`
	Category    string    `json:"category"`
	Minutes     int64     `json:"minutes"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

type Stats struct {
	Week       map[string]int64 `json:"week"`
	Month      map[string]int64 `json:"month"`
	WeekStart  time.Time        `json:"week_start"`
	MonthStart time.Time        `json:"month_start"`
}

type Health struct {
	Status   string            `json:"status"`
	Time     string            `json:"time"`
	Services map[string]string `json:"services"`
}
