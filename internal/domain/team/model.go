package team

import (
	"fmt"
	"sort"
)

// Team is a club as stored by the data scrapers. Code and LogoURL are
// optional.
type Team struct {
	ID      int64
	Name    string
	Code    string
	LogoURL string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be greater than zero")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	return nil
}

// SortByName orders teams by name, then id.
func SortByName(items []Team) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Name == items[j].Name {
			return items[i].ID < items[j].ID
		}
		return items[i].Name < items[j].Name
	})
}
