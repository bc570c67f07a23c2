package playerstats

import (
	"time"

	"github.com/riskibarqy/sportsline-dashboard/internal/domain/game"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/team"
)

// SeasonStat is a player's aggregate line for one season and team.
type SeasonStat struct {
	ID         int64
	PlayerID   int64
	SeasonID   int64
	SeasonYear int
	Team       team.Team
	Stats      StatShape
	UpdatedAt  time.Time
}

// GameStat is a player's line for one game.
type GameStat struct {
	ID       int64
	PlayerID int64
	TeamID   int64
	Game     game.Game
	Stats    StatShape
}
