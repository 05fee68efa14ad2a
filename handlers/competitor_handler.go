package handlers

import (
	"net/http"

	"github.com/tabledraw/tabledraw/services"
)

type CompetitorHandler struct {
	competitorService services.CompetitorService
}

func NewCompetitorHandler(cs services.CompetitorService) *CompetitorHandler {
	return &CompetitorHandler{
		competitorService: cs,
	}
}

// Add godoc
// @Summary Добавить участника в состав турнира
// @Tags competitors
// @Description Директор вносит участника в состав до начала игры.
// @Accept json
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param body body services.AddCompetitorInput true "Имя и рейтинг участника"
// @Success 201 {object} map[string]interface{} "Участник добавлен"
// @Failure 400 {object} map[string]string "Ошибка валидации"
// @Failure 401 {object} map[string]string "Неавторизован"
// @Failure 403 {object} map[string]string "Нет прав"
// @Failure 404 {object} map[string]string "Турнир не найден"
// @Failure 409 {object} map[string]string "Состав заполнен / заморожен / имя занято"
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/competitors [post]
func (h *CompetitorHandler) Add(w http.ResponseWriter, r *http.Request) {
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

	var input services.AddCompetitorInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	competitor, err := h.competitorService.Add(r.Context(), tournamentID, currentUserID, currentRole, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"competitor": competitor}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// List godoc
// @Summary Список участников турнира
// @Tags competitors
// @Description По умолчанию снявшиеся участники скрыты, include_withdrawn=true возвращает всех.
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param include_withdrawn query bool false "Показать снявшихся"
// @Success 200 {object} map[string]interface{} "Список участников"
// @Failure 404 {object} map[string]string "Турнир не найден"
// @Router /tournaments/{tournamentID}/competitors [get]
func (h *CompetitorHandler) List(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	includeWithdrawn := r.URL.Query().Get("include_withdrawn") == "true"

	competitors, err := h.competitorService.List(r.Context(), tournamentID, includeWithdrawn)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"competitors": competitors}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Update godoc
// @Summary Изменить имя или рейтинг участника
// @Tags competitors
// @Accept json
// @Produce json
// @Param competitorID path int true "Competitor ID"
// @Param body body services.UpdateCompetitorInput true "Изменяемые поля"
// @Success 200 {object} map[string]interface{} "Участник обновлён"
// @Failure 400 {object} map[string]string "Ошибка валидации"
// @Failure 401 {object} map[string]string "Неавторизован"
// @Failure 403 {object} map[string]string "Нет прав"
// @Failure 404 {object} map[string]string "Участник не найден"
// @Security BearerAuth
// @Router /competitors/{competitorID} [patch]
func (h *CompetitorHandler) Update(w http.ResponseWriter, r *http.Request) {
	competitorID, err := getIDFromURL(r, "competitorID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	currentUserID, currentRole, err := identityFromContext(r)
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	var input services.UpdateCompetitorInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	competitor, err := h.competitorService.Update(r.Context(), competitorID, currentUserID, currentRole, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"competitor": competitor}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetWithdrawn godoc
// @Summary Снять участника с турнира или вернуть в игру
// @Tags competitors
// @Description Снявшийся участник сохраняет сыгранные результаты, но не попадает в новые туры.
// @Accept json
// @Produce json
// @Param competitorID path int true "Competitor ID"
// @Success 200 {object} map[string]interface{} "Статус обновлён"
// @Failure 401 {object} map[string]string "Неавторизован"
// @Failure 403 {object} map[string]string "Нет прав"
// @Failure 404 {object} map[string]string "Участник не найден"
// @Security BearerAuth
// @Router /competitors/{competitorID}/withdrawn [patch]
func (h *CompetitorHandler) SetWithdrawn(w http.ResponseWriter, r *http.Request) {
	competitorID, err := getIDFromURL(r, "competitorID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	currentUserID, currentRole, err := identityFromContext(r)
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	var input struct {
		Withdrawn bool `json:"withdrawn"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	competitor, err := h.competitorService.SetWithdrawn(r.Context(), competitorID, currentUserID, currentRole, input.Withdrawn)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"competitor": competitor}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Remove godoc
// @Summary Удалить участника из состава
// @Tags competitors
// @Description Полное удаление возможно только до начала игры. Сыгравших участников снимают через withdrawn.
// @Param competitorID path int true "Competitor ID"
// @Success 204 "Участник удалён"
// @Failure 401 {object} map[string]string "Неавторизован"
// @Failure 403 {object} map[string]string "Нет прав"
// @Failure 404 {object} map[string]string "Участник не найден"
// @Failure 409 {object} map[string]string "У участника уже есть матчи"
// @Security BearerAuth
// @Router /competitors/{competitorID} [delete]
func (h *CompetitorHandler) Remove(w http.ResponseWriter, r *http.Request) {
	competitorID, err := getIDFromURL(r, "competitorID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	currentUserID, currentRole, err := identityFromContext(r)
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	if err := h.competitorService.Remove(r.Context(), competitorID, currentUserID, currentRole); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
