package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/player"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/statvalue"
	qb "github.com/riskibarqy/sportsline-dashboard/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id",
	"name",
	"firstname",
	"lastname",
	"birth_date",
	"height_cm",
	"weight_kg",
	"nationality",
	"photo_url",
	"biometrics",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).
		From("sl_players").
		Where(qb.Eq("id", playerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := withStatementRetry(ctx, func() error {
		return r.db.GetContext(ctx, &row, query, args...)
	}); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player by id: %w", err)
	}

	// Biometrics are free-form; a partially readable document is kept as is.
	biometrics, _ := statvalue.DecodeObject(row.Biometrics)

	return player.Player{
		ID:          row.ID,
		Name:        nullStringValue(row.Name),
		FirstName:   nullStringValue(row.FirstName),
		LastName:    nullStringValue(row.LastName),
		BirthDate:   nullTimePtr(row.BirthDate),
		HeightCM:    nullInt64ToIntPtr(row.HeightCM),
		WeightKG:    nullInt64ToIntPtr(row.WeightKG),
		Nationality: nullStringValue(row.Nationality),
		PhotoURL:    nullStringValue(row.PhotoURL),
		Biometrics:  biometrics,
	}, true, nil
}
