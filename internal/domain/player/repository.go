package player

import "context"

// Repository describes player reads needed by use cases.
type Repository interface {
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
}
