package handlers

import (
	"net/http"

	"github.com/tabledraw/tabledraw/services"
)

type PairingHandler struct {
	pairingService services.PairingService
}

func NewPairingHandler(ps services.PairingService) *PairingHandler {
	return &PairingHandler{
		pairingService: ps,
	}
}

// GenerateRound godoc
// @Summary Сгенерировать пары следующего тура
// @Tags pairing
// @Description Жеребьёвка очередного тура. Тело запроса опционально и позволяет разово переопределить политику пар.
// @Accept json
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param body body services.GenerateRoundInput false "Разовые переопределения политики"
// @Success 201 {object} services.RoundResult "Тур сгенерирован"
// @Failure 400 {object} map[string]string "Неизвестная политика / нет ручных пар"
// @Failure 401 {object} map[string]string "Неавторизован"
// @Failure 403 {object} map[string]string "Нет прав"
// @Failure 404 {object} map[string]string "Турнир не найден"
// @Failure 409 {object} map[string]string "Турнир не активен / тур не закрыт / туры исчерпаны"
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/rounds [post]
func (h *PairingHandler) GenerateRound(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	currentUserID, currentRole, err := identityFromContext(r)
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	// Тело опционально: без него тур генерируется по настройкам турнира.
	var input services.GenerateRoundInput
	if err := readJSON(w, r, &input); err != nil {
		if err.Error() != "body must not be empty" {
			badRequestResponse(w, r, err)
			return
		}
	}

	result, err := h.pairingService.GenerateRound(r.Context(), tournamentID, currentUserID, currentRole, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"round": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// VoidRound godoc
// @Summary Откатить текущий тур
// @Tags pairing
// @Description Удаляет пары текущего тура, пока по нему не записан ни один счёт, и уменьшает номер тура. После этого тур можно перепарить, в том числе другой политикой.
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 204 "Тур откачен"
// @Failure 401 {object} map[string]string "Неавторизован"
// @Failure 403 {object} map[string]string "Нет прав"
// @Failure 404 {object} map[string]string "Турнир не найден"
// @Failure 409 {object} map[string]string "Турнир не активен / нет тура / счёт уже записан"
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/rounds/current [delete]
func (h *PairingHandler) VoidRound(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	currentUserID, currentRole, err := identityFromContext(r)
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	if err := h.pairingService.VoidCurrentRound(r.Context(), tournamentID, currentUserID, currentRole); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
