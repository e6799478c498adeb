package rest

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"time-tracker/api/core"
)

type CreateEntryIn struct {
	Category    string  `json:"category"`
	Minutes     Minutes `json:"minutes"`
	Description string  `json:"description"`
	Timestamp   string  `json:"timestamp"` // optional, RFC 3339 or local "2006-01-02T15:04[:05]"
}

type UpdateEntryIn struct {
	Category    string  `json:"category"`
	Minutes     Minutes `json:"minutes"`
	Description string  `json:"description"`
}

// Minutes keeps the raw JSON value so a bad value is reported as a field error
// rather than as malformed JSON. Numbers and numeric strings are accepted.
type Minutes struct {
	raw json.RawMessage
}

func (m *Minutes) UnmarshalJSON(b []byte) error {
	m.raw = append(m.raw[:0], b...)
	return nil
}

func (m Minutes) Int64() (int64, error) {
	raw := bytes.TrimSpace(m.raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, &core.FieldError{Field: "minutes", Reason: "is required"}
	}

	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, &core.FieldError{Field: "minutes", Reason: "must be an integer"}
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, &core.FieldError{Field: "minutes", Reason: "is required"}
		}
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	// 60.0 is still a whole number of minutes
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) && math.Abs(f) < math.MaxInt32 {
		return int64(f), nil
	}
	return 0, &core.FieldError{Field: "minutes", Reason: "must be an integer"}
}

var localTimestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp returns nil for an empty string. Zone-less values are read in loc.
func ParseTimestamp(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return &t, nil
	}
	for _, layout := range localTimestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return &t, nil
		}
	}
	return nil, &core.FieldError{Field: "timestamp", Reason: "must be an ISO-8601 date-time"}
}
