package playerstats

import (
	"context"

	"github.com/riskibarqy/sportsline-dashboard/internal/domain/league"
)

// Repository reads player statistics. Payloads are decoded into StatShape
// before they leave the repository.
type Repository interface {
	GetCurrentSeasonStat(ctx context.Context, leagueSlug string, playerID int64) (SeasonStat, bool, error)
	ListRecentGameStats(ctx context.Context, sport league.Sport, playerID int64, limit int) ([]GameStat, error)
}
