package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/sportsline-dashboard/internal/display"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/game"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/league"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/player"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/playerstats"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/squad"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/statvalue"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/team"
	"github.com/riskibarqy/sportsline-dashboard/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

// RecentGamesLimit is how many game lines a profile carries.
const RecentGamesLimit = 10

// Opponent is the team a player faced. Known is false when the player's own
// side cannot be determined.
type Opponent struct {
	Known bool
	Team  team.Team
}

type RecentGame struct {
	GameID    int64
	Date      time.Time
	Status    string
	Side      game.Side
	Opponent  Opponent
	HomeScore *int
	AwayScore *int
	Shape     playerstats.ShapeKind
	// Summary joins the first display.SummaryPairs generic pairs.
	Summary    string
	Positional [playerstats.PositionalSize]string
}

// PlayerProfile is the denormalized player page. A nil CurrentSquad and an
// empty SeasonStats are normal states.
type PlayerProfile struct {
	League         league.League
	Player         player.Player
	CurrentSquad   *squad.Membership
	SeasonYear     int
	SeasonTeam     *team.Team
	SeasonStats    statvalue.Pairs
	HasSeasonStats bool
	RecentGames    []RecentGame
	MalformedStats int
}

type ProfileService struct {
	catalog    *league.Catalog
	playerRepo player.Repository
	squadRepo  squad.Repository
	statsRepo  playerstats.Repository
	logger     *logging.Logger
}

func NewProfileService(
	catalog *league.Catalog,
	playerRepo player.Repository,
	squadRepo squad.Repository,
	statsRepo playerstats.Repository,
	logger *logging.Logger,
) *ProfileService {
	if catalog == nil {
		catalog = league.DefaultCatalog()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ProfileService{
		catalog:    catalog,
		playerRepo: playerRepo,
		squadRepo:  squadRepo,
		statsRepo:  statsRepo,
		logger:     logger,
	}
}

func (s *ProfileService) GetPlayerProfile(ctx context.Context, leagueSlug string, playerID int64) (PlayerProfile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.GetPlayerProfile",
		attribute.String("league", leagueSlug),
		attribute.Int64("player_id", playerID),
	)
	defer span.End()

	lg, err := resolveLeague(s.catalog, leagueSlug)
	if err != nil {
		return PlayerProfile{}, err
	}
	if playerID <= 0 {
		return PlayerProfile{}, fmt.Errorf("%w: player=%d", ErrPlayerNotFound, playerID)
	}

	p, found, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return PlayerProfile{}, storeError("get player", err)
	}
	if !found {
		return PlayerProfile{}, fmt.Errorf("%w: player=%d league=%s", ErrPlayerNotFound, playerID, lg.Slug)
	}

	var (
		memberships []squad.Membership
		seasonStat  playerstats.SeasonStat
		hasSeason   bool
		gameStats   []playerstats.GameStat
	)

	reads := pool.New().WithContext(ctx).WithCancelOnError()
	reads.Go(func(ctx context.Context) error {
		items, err := s.squadRepo.ListCurrentByPlayer(ctx, lg.Slug, playerID)
		if err != nil {
			return storeError("list current squad", err)
		}
		memberships = items
		return nil
	})
	reads.Go(func(ctx context.Context) error {
		item, ok, err := s.statsRepo.GetCurrentSeasonStat(ctx, lg.Slug, playerID)
		if err != nil {
			return storeError("get season stat", err)
		}
		seasonStat, hasSeason = item, ok
		return nil
	})
	reads.Go(func(ctx context.Context) error {
		items, err := s.statsRepo.ListRecentGameStats(ctx, lg.Sport, playerID, RecentGamesLimit)
		if err != nil {
			return storeError("list recent game stats", err)
		}
		gameStats = items
		return nil
	})
	if err := reads.Wait(); err != nil {
		return PlayerProfile{}, err
	}

	profile := PlayerProfile{
		League:       lg,
		Player:       p,
		CurrentSquad: pickCurrentSquad(memberships),
		SeasonStats:  statvalue.Pairs{},
		RecentGames:  []RecentGame{},
	}

	if hasSeason {
		profile.HasSeasonStats = len(seasonStat.Stats.Pairs) > 0
		profile.SeasonStats = seasonStat.Stats.Pairs
		profile.SeasonYear = seasonStat.SeasonYear
		if seasonStat.Team.ID > 0 {
			seasonTeam := seasonStat.Team
			profile.SeasonTeam = &seasonTeam
		}
		if seasonStat.Stats.Malformed {
			profile.MalformedStats++
		}
	}

	profile.RecentGames = buildRecentGames(gameStats, profile.CurrentSquad)
	for _, gs := range gameStats {
		if gs.Stats.Malformed {
			profile.MalformedStats++
		}
	}
	if profile.MalformedStats > 0 {
		s.logger.WarnContext(ctx, "player profile rendered with malformed stats",
			"league", lg.Slug,
			"player_id", playerID,
			"malformed", profile.MalformedStats,
		)
	}

	return profile, nil
}

// pickCurrentSquad returns the most recently updated membership.
func pickCurrentSquad(items []squad.Membership) *squad.Membership {
	if len(items) == 0 {
		return nil
	}
	sorted := append([]squad.Membership(nil), items...)
	squad.SortByRecency(sorted)
	current := sorted[0]
	return &current
}

func buildRecentGames(stats []playerstats.GameStat, current *squad.Membership) []RecentGame {
	sorted := append([]playerstats.GameStat(nil), stats...)
	sortGameStatsByDateDesc(sorted)
	if len(sorted) > RecentGamesLimit {
		sorted = sorted[:RecentGamesLimit]
	}

	out := make([]RecentGame, 0, len(sorted))
	for _, gs := range sorted {
		row := RecentGame{
			GameID:    gs.Game.ID,
			Date:      gs.Game.Date,
			Status:    gs.Game.Status,
			Side:      game.SideUnknown,
			HomeScore: gs.Game.HomeScore,
			AwayScore: gs.Game.AwayScore,
			Shape:     gs.Stats.Kind,
		}
		if current != nil {
			row.Side = gs.Game.SideOf(current.Team.ID)
			row.Opponent = resolveOpponent(gs.Game, current.Team.ID)
		}

		switch gs.Stats.Kind {
		case playerstats.ShapeFixedPositional:
			row.Positional = gs.Stats.Positional
		default:
			row.Summary = display.JoinStatSummary(gs.Stats.Pairs, display.SummaryPairs)
		}
		out = append(out, row)
	}
	return out
}

// resolveOpponent picks the away team when teamID played at home and the home
// team otherwise.
func resolveOpponent(g game.Game, teamID int64) Opponent {
	if g.HomeTeam.ID == teamID {
		return Opponent{Known: true, Team: g.AwayTeam}
	}
	return Opponent{Known: true, Team: g.HomeTeam}
}
