package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/sportsline-dashboard/internal/usecase"
)

func (h *Handler) GetPlayerProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerProfile")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	rawPlayerID := strings.TrimSpace(r.PathValue("playerID"))
	backLink := rosterPlayersLink(leagueID)

	playerID, err := strconv.ParseInt(rawPlayerID, 10, 64)
	if err != nil {
		writeErrorWithBackLink(ctx, w, fmt.Errorf("%w: player=%q", usecase.ErrPlayerNotFound, rawPlayerID), backLink)
		return
	}

	profile, err := h.profileService.GetPlayerProfile(ctx, leagueID, playerID)
	if err != nil {
		if errors.Is(err, usecase.ErrPlayerNotFound) {
			writeErrorWithBackLink(ctx, w, err, backLink)
			return
		}
		h.logger.WarnContext(ctx, "get player profile failed",
			"league", leagueID,
			"player_id", playerID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, h.profileToDTO(ctx, profile))
}
