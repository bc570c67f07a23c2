package usecase

import (
	"sort"

	"github.com/riskibarqy/sportsline-dashboard/internal/domain/game"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/playerstats"
)

func sortGameStatsByDateDesc(items []playerstats.GameStat) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Game.Date.Equal(items[j].Game.Date) {
			return items[i].Game.ID > items[j].Game.ID
		}
		return items[i].Game.Date.After(items[j].Game.Date)
	})
}

func sortGames(items []game.Game, order game.Order) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date.Equal(items[j].Date) {
			if order == game.OrderDateAsc {
				return items[i].ID < items[j].ID
			}
			return items[i].ID > items[j].ID
		}
		if order == game.OrderDateAsc {
			return items[i].Date.Before(items[j].Date)
		}
		return items[i].Date.After(items[j].Date)
	})
}
