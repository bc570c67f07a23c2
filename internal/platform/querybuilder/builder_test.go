package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("s.id", "s.year").
		From("sl_seasons s").
		Join("sl_leagues l", "l.id = s.league_id").
		Where(Eq("l.slug", "kbo"), Eq("s.is_current", true)).
		OrderBy("s.year DESC").
		Limit(1).
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT s.id, s.year FROM sl_seasons s JOIN sl_leagues l ON l.id = s.league_id WHERE l.slug = $1 AND s.is_current = $2 ORDER BY s.year DESC LIMIT 1",
		query,
	)
	assert.Equal(t, []any{"kbo", true}, args)
}

func TestSelectBuilder_LeftJoinRangeAndIn(t *testing.T) {
	query, args, err := Select("g.id").
		From("sl_games g").
		LeftJoin("sl_teams ht", "ht.id = g.home_team_id").
		Where(
			InStrings("g.status", []string{"STATUS_FINAL", "STATUS_FULL_TIME"}),
			Lte("g.game_date", "2026-03-28"),
			IsNotNull("g.home_team_id"),
		).
		OrderBy("g.game_date DESC").
		Limit(20).
		Offset(20).
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT g.id FROM sl_games g LEFT JOIN sl_teams ht ON ht.id = g.home_team_id WHERE g.status IN ($1, $2) AND g.game_date <= $3 AND g.home_team_id IS NOT NULL ORDER BY g.game_date DESC LIMIT 20 OFFSET 20",
		query,
	)
	assert.Len(t, args, 3)
}

func TestSelectBuilder_ExprPlaceholdersContinueNumbering(t *testing.T) {
	query, args, err := Select("p.id").
		From("sl_players p").
		Where(Eq("p.id", int64(7)), Expr("(lower(p.name) LIKE ? OR lower(t.name) LIKE ?)", "%hong%", "%hong%")).
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "SELECT p.id FROM sl_players p WHERE p.id = $1 AND (lower(p.name) LIKE $2 OR lower(t.name) LIKE $3)", query)
	assert.Equal(t, []any{int64(7), "%hong%", "%hong%"}, args)
}

func TestSelectBuilder_EmptyInAndValidation(t *testing.T) {
	query, _, err := Select("id").From("sl_teams").Where(In("id", nil), IsNull("code")).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM sl_teams WHERE 1=0 AND code IS NULL", query)

	_, _, err = Select().From("sl_teams").ToSQL()
	assert.Error(t, err)
	_, _, err = Select("id").ToSQL()
	assert.Error(t, err)
	_, _, err = Select("id").From("a").Join("b", "").ToSQL()
	assert.Error(t, err)
}
