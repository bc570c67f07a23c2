package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/game"
	qb "github.com/riskibarqy/sportsline-dashboard/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func gameSelectColumns() []string {
	columns := []string{
		"g.id",
		"l.slug AS league_slug",
		"g.season_id",
		"g.game_date",
		"g.status",
		"g.home_score",
		"g.away_score",
		"g.score_detail",
	}
	columns = append(columns, teamSelectColumns("ht", "home")...)
	return append(columns, teamSelectColumns("at", "away")...)
}

func gameFrom(b *qb.SelectBuilder) *qb.SelectBuilder {
	return b.From("sl_games g").
		Join("sl_leagues l", "l.id = g.league_id").
		LeftJoin("sl_teams ht", "ht.id = g.home_team_id").
		LeftJoin("sl_teams at", "at.id = g.away_team_id")
}

func buildListGamesQuery(query game.Query) (string, []any, error) {
	conditions := []qb.Condition{qb.Eq("l.slug", query.LeagueSlug)}
	if len(query.Statuses) > 0 {
		conditions = append(conditions, qb.InStrings("g.status", query.Statuses))
	}
	if !query.Before.IsZero() {
		conditions = append(conditions, qb.Lte("g.game_date", query.Before))
	}
	if !query.After.IsZero() {
		conditions = append(conditions, qb.Gte("g.game_date", query.After))
	}

	order := []string{"g.game_date DESC", "g.id DESC"}
	if query.Order == game.OrderDateAsc {
		order = []string{"g.game_date ASC", "g.id ASC"}
	}

	b := gameFrom(qb.Select(gameSelectColumns()...)).
		Where(conditions...).
		OrderBy(order...)
	if query.Limit > 0 {
		b = b.Limit(query.Limit)
	}
	return b.ToSQL()
}

func (r *GameRepository) List(ctx context.Context, query game.Query) ([]game.Game, error) {
	sqlQuery, args, err := buildListGamesQuery(query)
	if err != nil {
		return nil, fmt.Errorf("build list games query: %w", err)
	}

	var rows []gameRowModel
	if err := withStatementRetry(ctx, func() error {
		return r.db.SelectContext(ctx, &rows, sqlQuery, args...)
	}); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (row gameRowModel) toDomain() game.Game {
	return game.Game{
		ID:         row.ID,
		LeagueSlug: row.LeagueSlug,
		SeasonID:   nullInt64Value(row.SeasonID),
		Date:       row.GameDate,
		Status:     game.NormalizeStatus(nullStringValue(row.Status)),
		HomeTeam:   row.Home.toDomain(),
		AwayTeam:   row.Away.toDomain(),
		HomeScore:  nullInt64ToIntPtr(row.HomeScore),
		AwayScore:  nullInt64ToIntPtr(row.AwayScore),
		Venue:      decodeVenue(row.ScoreDetail),
	}
}
