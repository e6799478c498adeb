package core

type ListEntriesFilter struct {
	Search string `json:"search"`
}
