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

type CategoryHandler struct {
	svc *services.CategoryService
}

func NewCategoryHandler(svc *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

type categoryRequest struct {
	BlogID int     `json:"blogId"`
	Name   string  `json:"name"`
	Slug   *string `json:"slug,omitempty"`
}

// List godoc
// @Summary Получить список рубрик (по алфавиту, с именем блога)
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Router /api/categories [get]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, err, "Ошибка получения рубрик")
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// GetByID godoc
// @Summary Получить рубрику по ID
// @Tags categories
// @Produce json
// @Param id path int true "ID рубрики"
// @Success 200 {object} models.Category
// @Failure 404 {object} map[string]string
// @Router /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	c, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err, "Ошибка получения рубрики")
		return
	}
	helpers.JSON(w, http.StatusOK, c)
}

// Create godoc
// @Summary Создать рубрику
// @Tags categories
// @Accept json
// @Produce json
// @Param input body categoryRequest true "Данные рубрики"
// @Success 201 {object} models.Category
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/categories [post]
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при создании рубрики", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	c, err := h.svc.Create(r.Context(), &models.Category{
		BlogID: req.BlogID,
		Name:   req.Name,
		Slug:   req.Slug,
	})
	if err != nil {
		respondError(w, err, "Ошибка создания рубрики")
		return
	}
	helpers.JSON(w, http.StatusCreated, c)
}

// Update godoc
// @Summary Обновить рубрику
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "ID рубрики"
// @Param input body categoryRequest true "Новые данные"
// @Success 200 {object} models.Category
// @Failure 404 {object} map[string]string
// @Router /api/categories/{id} [put]
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при обновлении рубрики", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	c, err := h.svc.Update(r.Context(), id, &models.Category{
		BlogID: req.BlogID,
		Name:   req.Name,
		Slug:   req.Slug,
	})
	if err != nil {
		respondError(w, err, "Ошибка обновления рубрики")
		return
	}
	helpers.JSON(w, http.StatusOK, c)
}

// Delete godoc
// @Summary Удалить рубрику
// @Tags categories
// @Produce json
// @Param id path int true "ID рубрики"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, err, "Ошибка удаления рубрики")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"message": "Рубрика удалена"})
}
