package postgres

import "github.com/riskibarqy/sportsline-dashboard/internal/domain/team"

// teamSelectColumns aliases a joined sl_teams row into the prefix used by
// teamColumns, e.g. ht.name AS "home.name".
func teamSelectColumns(tableAlias, prefix string) []string {
	return []string{
		tableAlias + `.id AS "` + prefix + `.id"`,
		tableAlias + `.name AS "` + prefix + `.name"`,
		tableAlias + `.code AS "` + prefix + `.code"`,
		tableAlias + `.logo_url AS "` + prefix + `.logo_url"`,
	}
}

func (c teamColumns) toDomain() team.Team {
	return team.Team{
		ID:      nullInt64Value(c.ID),
		Name:    nullStringValue(c.Name),
		Code:    nullStringValue(c.Code),
		LogoURL: nullStringValue(c.LogoURL),
	}
}
