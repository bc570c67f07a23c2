package httpapi

import (
	"context"
	"net/http"

	"github.com/riskibarqy/sportsline-dashboard/internal/domain/game"
)

func (h *Handler) ListResultsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListResultsByLeague")
	defer span.End()

	h.writeGames(ctx, w, r.PathValue("leagueID"), "list results", h.gameService.ListResults)
}

func (h *Handler) ListScheduleByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListScheduleByLeague")
	defer span.End()

	h.writeGames(ctx, w, r.PathValue("leagueID"), "list schedule", h.gameService.ListSchedule)
}

func (h *Handler) writeGames(
	ctx context.Context,
	w http.ResponseWriter,
	leagueID string,
	op string,
	list func(context.Context, string) ([]game.Game, error),
) {
	games, err := list(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, op+" failed", "league", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]gameDTO, 0, len(games))
	for _, g := range games {
		items = append(items, h.gameToDTO(g))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListLatestResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLatestResults")
	defer span.End()

	latest, err := h.gameService.LatestResults(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "latest results failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]latestResultDTO, 0, len(latest))
	for _, item := range latest {
		row := latestResultDTO{League: leagueToDTO(item.League)}
		if item.Game != nil {
			g := h.gameToDTO(*item.Game)
			row.Game = &g
		}
		items = append(items, row)
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}
