package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/season"
	qb "github.com/riskibarqy/sportsline-dashboard/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func buildCurrentSeasonQuery(leagueSlug string) (string, []any, error) {
	return qb.Select("s.id", "s.year", "s.is_current", "l.slug AS league_slug").
		From("sl_seasons s").
		Join("sl_leagues l", "l.id = s.league_id").
		Where(qb.Eq("l.slug", leagueSlug), qb.Eq("s.is_current", true)).
		OrderBy("s.year DESC", "s.id DESC").
		Limit(1).
		ToSQL()
}

func (r *SeasonRepository) GetCurrent(ctx context.Context, leagueSlug string) (season.Season, bool, error) {
	query, args, err := buildCurrentSeasonQuery(leagueSlug)
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build current season query: %w", err)
	}

	var row seasonTableModel
	if err := withStatementRetry(ctx, func() error {
		return r.db.GetContext(ctx, &row, query, args...)
	}); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("select current season: %w", err)
	}

	return season.Season{
		ID:         row.ID,
		LeagueSlug: row.LeagueSlug,
		Year:       row.Year,
		IsCurrent:  row.IsCurrent,
	}, true, nil
}
