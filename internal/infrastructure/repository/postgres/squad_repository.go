package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/squad"
	qb "github.com/riskibarqy/sportsline-dashboard/internal/platform/querybuilder"
)

type SquadRepository struct {
	db *sqlx.DB
}

func NewSquadRepository(db *sqlx.DB) *SquadRepository {
	return &SquadRepository{db: db}
}

func squadSelect() *qb.SelectBuilder {
	columns := []string{
		"ps.id",
		"ps.season_id",
		"ps.position",
		"ps.jersey_number",
		"ps.updated_at",
		"p.id AS player_id",
		"p.name AS player_name",
		"p.firstname AS player_firstname",
		"p.lastname AS player_lastname",
		"p.photo_url AS player_photo_url",
	}
	columns = append(columns, teamSelectColumns("t", "team")...)

	return qb.Select(columns...).
		From("sl_player_squads ps").
		Join("sl_players p", "p.id = ps.player_id").
		Join("sl_teams t", "t.id = ps.team_id")
}

func buildListBySeasonQuery(seasonID int64, limit int) (string, []any, error) {
	return squadSelect().
		Where(qb.Eq("ps.season_id", seasonID)).
		OrderBy(`p.name COLLATE "C" ASC`, "ps.id ASC").
		Limit(limit).
		ToSQL()
}

func buildCurrentByPlayerQuery(leagueSlug string, playerID int64) (string, []any, error) {
	return squadSelect().
		Join("sl_seasons s", "s.id = ps.season_id").
		Join("sl_leagues l", "l.id = s.league_id").
		Where(
			qb.Eq("l.slug", leagueSlug),
			qb.Eq("s.is_current", true),
			qb.Eq("ps.player_id", playerID),
		).
		OrderBy("ps.updated_at DESC NULLS LAST", "ps.id DESC").
		ToSQL()
}

func (r *SquadRepository) ListBySeason(ctx context.Context, seasonID int64, limit int) ([]squad.Membership, error) {
	query, args, err := buildListBySeasonQuery(seasonID, limit)
	if err != nil {
		return nil, fmt.Errorf("build squad by season query: %w", err)
	}
	return r.selectMemberships(ctx, "select squad by season", query, args)
}

func (r *SquadRepository) ListCurrentByPlayer(ctx context.Context, leagueSlug string, playerID int64) ([]squad.Membership, error) {
	query, args, err := buildCurrentByPlayerQuery(leagueSlug, playerID)
	if err != nil {
		return nil, fmt.Errorf("build current squad by player query: %w", err)
	}
	return r.selectMemberships(ctx, "select current squad by player", query, args)
}

func (r *SquadRepository) selectMemberships(ctx context.Context, op, query string, args []any) ([]squad.Membership, error) {
	var rows []squadRowModel
	if err := withStatementRetry(ctx, func() error {
		return r.db.SelectContext(ctx, &rows, query, args...)
	}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]squad.Membership, 0, len(rows))
	for _, row := range rows {
		m := squad.Membership{
			ID:       row.ID,
			SeasonID: row.SeasonID,
			Player: squad.PlayerSummary{
				ID:        row.PlayerID,
				Name:      nullStringValue(row.PlayerName),
				FirstName: nullStringValue(row.PlayerFirstName),
				LastName:  nullStringValue(row.PlayerLastName),
				PhotoURL:  nullStringValue(row.PlayerPhotoURL),
			},
			Team:         row.Team.toDomain(),
			Position:     nullStringValue(row.Position),
			JerseyNumber: nullInt64ToIntPtr(row.JerseyNumber),
		}
		if row.UpdatedAt.Valid {
			m.UpdatedAt = row.UpdatedAt.Time
		}
		out = append(out, m)
	}
	return out, nil
}
