package memory

import (
	"sync"
	"time"

	"github.com/riskibarqy/sportsline-dashboard/internal/domain/game"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/player"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/season"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/squad"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/team"
)

// SeasonStatRecord is a stored aggregate row. Payload is the raw JSON stat
// mapping as the scrapers write it.
type SeasonStatRecord struct {
	ID        int64
	PlayerID  int64
	SeasonID  int64
	TeamID    int64
	Payload   []byte
	UpdatedAt time.Time
}

// GameStatRecord is a stored per-game row.
type GameStatRecord struct {
	ID       int64
	PlayerID int64
	TeamID   int64
	GameID   int64
	Payload  []byte
}

// Dataset is the full content of an in-memory store.
type Dataset struct {
	Seasons     []season.Season
	Teams       []team.Team
	Players     []player.Player
	Memberships []squad.Membership
	SeasonStats []SeasonStatRecord
	Games       []game.Game
	GameStats   []GameStatRecord
}

// Store indexes a Dataset for the repositories in this package.
type Store struct {
	mu sync.RWMutex

	seasons     []season.Season
	teams       map[int64]team.Team
	players     map[int64]player.Player
	memberships []squad.Membership
	seasonStats []SeasonStatRecord
	games       map[int64]game.Game
	gameStats   []GameStatRecord
}

func NewStore(ds Dataset) *Store {
	s := &Store{
		seasons:     append([]season.Season(nil), ds.Seasons...),
		teams:       make(map[int64]team.Team, len(ds.Teams)),
		players:     make(map[int64]player.Player, len(ds.Players)),
		seasonStats: append([]SeasonStatRecord(nil), ds.SeasonStats...),
		games:       make(map[int64]game.Game, len(ds.Games)),
		gameStats:   append([]GameStatRecord(nil), ds.GameStats...),
	}
	for _, t := range ds.Teams {
		s.teams[t.ID] = t
	}
	for _, p := range ds.Players {
		s.players[p.ID] = p
	}
	for _, m := range ds.Memberships {
		if t, ok := s.teams[m.Team.ID]; ok && m.Team.Name == "" {
			m.Team = t
		}
		if p, ok := s.players[m.Player.ID]; ok && m.Player.Name == "" {
			m.Player = squad.PlayerSummary{
				ID:        p.ID,
				Name:      p.Name,
				FirstName: p.FirstName,
				LastName:  p.LastName,
				PhotoURL:  p.PhotoURL,
			}
		}
		s.memberships = append(s.memberships, m)
	}
	for _, g := range ds.Games {
		g.HomeTeam = s.teamOr(g.HomeTeam)
		g.AwayTeam = s.teamOr(g.AwayTeam)
		s.games[g.ID] = g
	}
	return s
}

func (s *Store) teamOr(t team.Team) team.Team {
	if full, ok := s.teams[t.ID]; ok && t.Name == "" {
		return full
	}
	return t
}

// currentSeason mirrors the SQL tie-break: newest year, then highest id.
// Callers hold s.mu.
func (s *Store) currentSeason(leagueSlug string) (season.Season, bool) {
	var (
		best  season.Season
		found bool
	)
	for _, item := range s.seasons {
		if item.LeagueSlug != leagueSlug || !item.IsCurrent {
			continue
		}
		if !found || item.Year > best.Year || (item.Year == best.Year && item.ID > best.ID) {
			best = item
			found = true
		}
	}
	return best, found
}
