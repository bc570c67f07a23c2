package squad

import "context"

// Repository describes squad membership reads needed by use cases.
type Repository interface {
	// ListBySeason returns memberships joined with player and team, ordered by
	// player name. limit <= 0 means no limit.
	ListBySeason(ctx context.Context, seasonID int64, limit int) ([]Membership, error)
	// ListCurrentByPlayer returns the player's memberships in the league's
	// current season, most recently updated first.
	ListCurrentByPlayer(ctx context.Context, leagueSlug string, playerID int64) ([]Membership, error)
}
