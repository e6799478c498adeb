package core

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	MaxCategoryLen    = 64
	MaxDescriptionLen = 128
)

func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func cleanCategory(s string) (string, error) {
	s = normalize(s)
	if s == "" {
		return "", fieldErr("category", "is required")
	}
	if utf8.RuneCountInString(s) > MaxCategoryLen {
		return "", fieldErr("category", "is longer than 64 characters")
	}
	return s, nil
}

func cleanDescription(s string) (string, error) {
	s = normalize(s)
	if utf8.RuneCountInString(s) > MaxDescriptionLen {
		return "", fieldErr("description", "is longer than 128 characters")
	}
	return s, nil
}

// NormalizeSearch prepares a free-text query for matching.
func NormalizeSearch(q string) string {
	return normalize(q)
}
