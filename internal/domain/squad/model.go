package squad

import (
	"sort"
	"time"

	"github.com/riskibarqy/sportsline-dashboard/internal/domain/team"
)

// PlayerSummary is the slice of a player row joined into a membership.
type PlayerSummary struct {
	ID        int64
	Name      string
	FirstName string
	LastName  string
	PhotoURL  string
}

// Membership links a player to a team for one season.
type Membership struct {
	ID           int64
	SeasonID     int64
	Player       PlayerSummary
	Team         team.Team
	Position     string
	JerseyNumber *int
	UpdatedAt    time.Time
}

// SortByPlayerName orders memberships by player name using byte-wise
// comparison, then by membership id.
func SortByPlayerName(items []Membership) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Player.Name == items[j].Player.Name {
			return items[i].ID < items[j].ID
		}
		return items[i].Player.Name < items[j].Player.Name
	})
}

// SortByRecency puts the most recently updated membership first.
func SortByRecency(items []Membership) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].UpdatedAt.Equal(items[j].UpdatedAt) {
			return items[i].ID > items[j].ID
		}
		return items[i].UpdatedAt.After(items[j].UpdatedAt)
	})
}
