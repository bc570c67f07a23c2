package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/sportsline-dashboard/internal/usecase"
)

type rosterAPIRequest struct {
	League string `validate:"required"`
}

type rosterViewRequest struct {
	TeamID string `validate:"omitempty,numeric"`
	Search string `validate:"max=100"`
}

type rosterAPIError struct {
	Error string `json:"error"`
}

// ListRosterAPI serves GET /api/players?league=. The body is a bare JSON
// array; unknown leagues and leagues without a current season yield [].
func (h *Handler) ListRosterAPI(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRosterAPI")
	defer span.End()

	req := rosterAPIRequest{League: strings.TrimSpace(r.URL.Query().Get("league"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, rosterAPIError{Error: "League slug is required"})
		return
	}

	items, err := h.rosterService.ListCurrentSquad(ctx, req.League)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownLeague) {
			writeJSON(ctx, w, http.StatusOK, []rosterRecordDTO{})
			return
		}
		h.logger.ErrorContext(ctx, "roster api failed", "league", req.League, "error", err)
		writeJSON(ctx, w, http.StatusInternalServerError, rosterAPIError{Error: "Internal Server Error"})
		return
	}

	out := make([]rosterRecordDTO, 0, len(items))
	for _, m := range items {
		out = append(out, membershipToRecordDTO(m))
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListPlayersByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	req := rosterViewRequest{
		TeamID: strings.TrimSpace(r.URL.Query().Get("team_id")),
		Search: strings.TrimSpace(r.URL.Query().Get("q")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	query := usecase.RosterQuery{League: leagueID, Search: req.Search}
	if req.TeamID != "" {
		teamID, err := strconv.ParseInt(req.TeamID, 10, 64)
		if err != nil {
			writeError(ctx, w, usecase.ErrInvalidInput)
			return
		}
		query.TeamID = teamID
	}

	view, err := h.rosterService.ListRoster(ctx, query)
	if err != nil {
		h.logger.WarnContext(ctx, "list roster failed", "league", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := rosterViewDTO{
		League:       leagueToDTO(view.League),
		Teams:        make([]teamOptionDTO, 0, len(view.Teams)),
		Players:      h.rosterCards(ctx, view.League.Slug, view.Members),
		Count:        len(view.Members),
		Total:        view.Total,
		SelectedTeam: "all",
		Search:       req.Search,
	}
	if query.TeamID > 0 {
		out.SelectedTeam = idString(query.TeamID)
	}
	for _, t := range view.Teams {
		out.Teams = append(out.Teams, teamOptionDTO{ID: idString(t.ID), Name: t.Name})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
