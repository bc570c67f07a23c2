package season

import "fmt"

// Season is one year of a league. At most one season per league is expected
// to be flagged current.
type Season struct {
	ID         int64
	LeagueSlug string
	Year       int
	IsCurrent  bool
}

func (s Season) Validate() error {
	if s.ID <= 0 {
		return fmt.Errorf("season id must be greater than zero")
	}
	if s.LeagueSlug == "" {
		return fmt.Errorf("season league slug is required")
	}
	if s.Year <= 0 {
		return fmt.Errorf("season year must be greater than zero")
	}
	return nil
}
