package core

import (
	"strconv"
	"strings"
)

// EntryForm is what the user typed. Minutes stay text until they reach the server.
type EntryForm struct {
	Category    string
	Minutes     string
	Description string

	// Timestamp is sent as-is when adding; empty means now. Updates ignore it.
	Timestamp string
}

// FormFromEntry fills a form with the current values of e.
func FormFromEntry(e Entry) EntryForm {
	return EntryForm{
		Category:    e.Category,
		Minutes:     strconv.FormatInt(e.Minutes, 10),
		Description: e.Description,
	}
}

// Validate rejects a blank category and empty or zero minutes. Any other minutes
// text, numeric or not, is left for the server to judge.
func (f EntryForm) Validate() error {
	if strings.TrimSpace(f.Category) == "" {
		return ErrCategoryRequired
	}
	if !minutesGiven(f.Minutes) {
		return ErrMinutesRequired
	}
	return nil
}

func minutesGiven(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && v == 0 {
		return false
	}
	return true
}

// MinutesValue is the JSON value sent for the minutes text: a number when it
// parses as an integer, otherwise the text itself.
func (f EntryForm) MinutesValue() any {
	s := strings.TrimSpace(f.Minutes)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return s
}
