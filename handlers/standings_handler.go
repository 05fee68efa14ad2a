package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/tabledraw/tabledraw/services"
)

type StandingsHandler struct {
	standingsService services.StandingsService
}

func NewStandingsHandler(ss services.StandingsService) *StandingsHandler {
	return &StandingsHandler{
		standingsService: ss,
	}
}

// Get godoc
// @Summary Турнирная таблица
// @Tags standings
// @Description Текущая таблица турнира. Параметр round даёт срез таблицы на конец указанного тура.
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param round query int false "Срез на конец тура N"
// @Success 200 {object} services.StandingsView "Таблица"
// @Failure 400 {object} map[string]string "Невалидный параметр round"
// @Failure 404 {object} map[string]string "Турнир не найден"
// @Router /tournaments/{tournamentID}/standings [get]
func (h *StandingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	upToRound, err := parseRoundCutoff(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	view, err := h.standingsService.GetStandings(r.Context(), tournamentID, upToRound)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": view}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ExportCSV godoc
// @Summary Выгрузить таблицу в CSV
// @Tags standings
// @Produce text/csv
// @Param tournamentID path int true "Tournament ID"
// @Param round query int false "Срез на конец тура N"
// @Success 200 {string} string "CSV-файл"
// @Failure 404 {object} map[string]string "Турнир не найден"
// @Router /tournaments/{tournamentID}/standings/export [get]
func (h *StandingsHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	upToRound, err := parseRoundCutoff(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	data, filename, err := h.standingsService.ExportCSV(r.Context(), tournamentID, upToRound)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		fmt.Printf("Error writing CSV response: %v\n", err)
	}
}

func parseRoundCutoff(r *http.Request) (*int, error) {
	roundStr := r.URL.Query().Get("round")
	if roundStr == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(roundStr)
	if err != nil || n < 0 {
		return nil, errors.New("invalid round query parameter")
	}
	return &n, nil
}
