package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/league"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/playerstats"
	qb "github.com/riskibarqy/sportsline-dashboard/internal/platform/querybuilder"
)

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func buildCurrentSeasonStatQuery(leagueSlug string, playerID int64) (string, []any, error) {
	columns := []string{
		"pss.id",
		"pss.player_id",
		"pss.season_id",
		"s.year AS season_year",
		"pss.stats",
		"pss.updated_at",
	}
	columns = append(columns, teamSelectColumns("t", "team")...)

	return qb.Select(columns...).
		From("sl_player_season_stats pss").
		Join("sl_seasons s", "s.id = pss.season_id").
		Join("sl_leagues l", "l.id = s.league_id").
		LeftJoin("sl_teams t", "t.id = pss.team_id").
		Where(
			qb.Eq("l.slug", leagueSlug),
			qb.Eq("s.is_current", true),
			qb.Eq("pss.player_id", playerID),
		).
		OrderBy("s.year DESC", "pss.updated_at DESC NULLS LAST", "pss.id DESC").
		Limit(1).
		ToSQL()
}

func buildRecentGameStatsQuery(playerID int64, limit int) (string, []any, error) {
	columns := []string{
		"pgs.id AS stat_id",
		"pgs.player_id AS stat_player_id",
		"pgs.team_id AS stat_team_id",
		"pgs.stats",
	}
	columns = append(columns, gameSelectColumns()...)

	b := gameFrom(qb.Select(columns...)).
		Join("sl_player_game_stats pgs", "pgs.game_id = g.id").
		Where(qb.Eq("pgs.player_id", playerID)).
		OrderBy("g.game_date DESC", "g.id DESC")
	if limit > 0 {
		b = b.Limit(limit)
	}
	return b.ToSQL()
}

func (r *PlayerStatsRepository) GetCurrentSeasonStat(ctx context.Context, leagueSlug string, playerID int64) (playerstats.SeasonStat, bool, error) {
	query, args, err := buildCurrentSeasonStatQuery(leagueSlug, playerID)
	if err != nil {
		return playerstats.SeasonStat{}, false, fmt.Errorf("build season stat query: %w", err)
	}

	var row seasonStatRowModel
	if err := withStatementRetry(ctx, func() error {
		return r.db.GetContext(ctx, &row, query, args...)
	}); err != nil {
		if isNotFound(err) {
			return playerstats.SeasonStat{}, false, nil
		}
		return playerstats.SeasonStat{}, false, fmt.Errorf("select season stat: %w", err)
	}

	out := playerstats.SeasonStat{
		ID:         row.ID,
		PlayerID:   row.PlayerID,
		SeasonID:   row.SeasonID,
		SeasonYear: row.SeasonYear,
		Team:       row.Team.toDomain(),
		Stats:      playerstats.ResolveSeasonShape(row.Stats),
	}
	if row.UpdatedAt.Valid {
		out.UpdatedAt = row.UpdatedAt.Time
	}
	return out, true, nil
}

func (r *PlayerStatsRepository) ListRecentGameStats(ctx context.Context, sport league.Sport, playerID int64, limit int) ([]playerstats.GameStat, error) {
	query, args, err := buildRecentGameStatsQuery(playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("build recent game stats query: %w", err)
	}

	var rows []gameStatRowModel
	if err := withStatementRetry(ctx, func() error {
		return r.db.SelectContext(ctx, &rows, query, args...)
	}); err != nil {
		return nil, fmt.Errorf("select recent game stats: %w", err)
	}

	out := make([]playerstats.GameStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerstats.GameStat{
			ID:       row.StatID,
			PlayerID: row.PlayerID,
			TeamID:   nullInt64Value(row.TeamID),
			Game:     row.gameRowModel.toDomain(),
			Stats:    playerstats.ResolveGameShape(sport, row.Stats),
		})
	}
	return out, nil
}
