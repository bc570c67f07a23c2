package season

import "context"

// Repository describes season reads needed by use cases.
type Repository interface {
	// GetCurrent returns the current season of a league. When several rows are
	// flagged current the newest year wins.
	GetCurrent(ctx context.Context, leagueSlug string) (Season, bool, error)
}
