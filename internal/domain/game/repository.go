package game

import (
	"context"
	"time"
)

// Order of a game listing by date.
type Order int

const (
	OrderDateDesc Order = iota
	OrderDateAsc
)

// Query filters a league's games.
type Query struct {
	LeagueSlug string
	Statuses   []string
	// Before and After bound the game date inclusively; zero means unbounded.
	Before time.Time
	After  time.Time
	Order  Order
	Limit  int
}

// Repository describes game reads needed by use cases.
type Repository interface {
	List(ctx context.Context, query Query) ([]Game, error)
}
