package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/tabledraw/tabledraw/models"
	"github.com/tabledraw/tabledraw/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(ms services.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: ms,
	}
}

// ListByTournament обрабатывает GET /tournaments/{tournamentID}/matches
func (h *MatchHandler) ListByTournament(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	query := r.URL.Query()

	var round *int
	if roundStr := query.Get("round"); roundStr != "" {
		if n, err := strconv.Atoi(roundStr); err == nil && n > 0 {
			round = &n
		} else {
			badRequestResponse(w, r, errors.New("invalid round query parameter"))
			return
		}
	}

	var status *models.MatchStatus
	if statusStr := query.Get("status"); statusStr != "" {
		s := models.MatchStatus(statusStr)
		status = &s
	}

	matches, err := h.matchService.ListByTournament(r.Context(), tournamentID, round, status)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RecordScore godoc
// @Summary Записать или исправить счёт матча
// @Tags matches
// @Description Пока турнир активен, счёт можно перезаписывать. Bye-строки счёта не принимают.
// @Accept json
// @Produce json
// @Param matchID path int true "Match ID"
// @Param body body services.RecordScoreInput true "Счёт обеих сторон"
// @Success 200 {object} map[string]interface{} "Счёт записан"
// @Failure 400 {object} map[string]string "Отрицательный счёт / bye"
// @Failure 401 {object} map[string]string "Неавторизован"
// @Failure 403 {object} map[string]string "Нет прав"
// @Failure 404 {object} map[string]string "Матч не найден"
// @Failure 409 {object} map[string]string "Турнир уже завершён"
// @Security BearerAuth
// @Router /matches/{matchID}/score [patch]
func (h *MatchHandler) RecordScore(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	currentUserID, currentRole, err := identityFromContext(r)
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	var input services.RecordScoreInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.RecordScore(r.Context(), matchID, currentUserID, currentRole, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
