package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bloghub/internal/logger"
	"bloghub/internal/models"
	"bloghub/internal/services"
	helpers "bloghub/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type TagHandler struct {
	svc *services.TagService
}

func NewTagHandler(svc *services.TagService) *TagHandler {
	return &TagHandler{svc: svc}
}

type tagRequest struct {
	Name string `json:"name"`
}

// List godoc
// @Summary Получить список тегов (с количеством постов)
// @Tags tags
// @Produce json
// @Success 200 {array} models.Tag
// @Router /api/tags [get]
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, err, "Ошибка получения тегов")
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// GetByID godoc
// @Summary Получить тег по ID
// @Tags tags
// @Produce json
// @Param id path int true "ID тега"
// @Success 200 {object} models.Tag
// @Failure 404 {object} map[string]string
// @Router /api/tags/{id} [get]
func (h *TagHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	t, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err, "Ошибка получения тега")
		return
	}
	helpers.JSON(w, http.StatusOK, t)
}

// Create godoc
// @Summary Создать тег
// @Description Имя тега глобально уникально; дубликат — 409
// @Tags tags
// @Accept json
// @Produce json
// @Param input body tagRequest true "Данные тега"
// @Success 201 {object} models.Tag
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/tags [post]
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при создании тега", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	t, err := h.svc.Create(r.Context(), &models.Tag{Name: req.Name})
	if err != nil {
		respondError(w, err, "Ошибка создания тега")
		return
	}
	helpers.JSON(w, http.StatusCreated, t)
}

// Update godoc
// @Summary Обновить тег
// @Tags tags
// @Accept json
// @Produce json
// @Param id path int true "ID тега"
// @Param input body tagRequest true "Новые данные"
// @Success 200 {object} models.Tag
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/tags/{id} [put]
func (h *TagHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при обновлении тега", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	t, err := h.svc.Update(r.Context(), id, &models.Tag{Name: req.Name})
	if err != nil {
		respondError(w, err, "Ошибка обновления тега")
		return
	}
	helpers.JSON(w, http.StatusOK, t)
}

// Delete godoc
// @Summary Удалить тег (посты остаются)
// @Tags tags
// @Produce json
// @Param id path int true "ID тега"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/tags/{id} [delete]
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, err, "Ошибка удаления тега")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"message": "Тег удалён"})
}
