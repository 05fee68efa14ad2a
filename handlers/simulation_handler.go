package handlers

import (
	"net/http"

	"github.com/tabledraw/tabledraw/services"
)

type SimulationHandler struct {
	simulationService services.SimulationService
}

func NewSimulationHandler(ss services.SimulationService) *SimulationHandler {
	return &SimulationHandler{
		simulationService: ss,
	}
}

// Simulate godoc
// @Summary Просчитать таблицу "что если"
// @Tags standings
// @Description Принимает гипотетические счета несыгранных матчей текущего тура и возвращает таблицу, какой она стала бы. Ничего не сохраняет.
// @Accept json
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param body body services.SimulateInput true "Гипотетические счета"
// @Success 200 {object} services.SimulationResult "Гипотетическая таблица"
// @Failure 400 {object} map[string]string "Пустой список счетов / неизвестные участники"
// @Failure 404 {object} map[string]string "Турнир не найден"
// @Failure 409 {object} map[string]string "Турнир не активен / нет несыгранных матчей"
// @Router /tournaments/{tournamentID}/simulations [post]
func (h *SimulationHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.SimulateInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.simulationService.Simulate(r.Context(), tournamentID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"simulation": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
