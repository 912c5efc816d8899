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

type BlogHandler struct {
	svc *services.BlogService
}

func NewBlogHandler(svc *services.BlogService) *BlogHandler {
	return &BlogHandler{svc: svc}
}

type blogRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
	URL         *string `json:"url,omitempty"`
}

// List godoc
// @Summary Получить список блогов
// @Tags blogs
// @Produce json
// @Success 200 {array} models.Blog
// @Router /api/blogs [get]
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	list, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, err, "Ошибка получения блогов")
		return
	}
	log.Debug("Блоги получены", zap.Int("count", len(list)))
	helpers.JSON(w, http.StatusOK, list)
}

// GetByID godoc
// @Summary Получить блог по ID
// @Tags blogs
// @Produce json
// @Param id path int true "ID блога"
// @Success 200 {object} models.Blog
// @Failure 404 {object} map[string]string
// @Router /api/blogs/{id} [get]
func (h *BlogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	b, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err, "Ошибка получения блога")
		return
	}
	helpers.JSON(w, http.StatusOK, b)
}

// Create godoc
// @Summary Создать блог
// @Tags blogs
// @Accept json
// @Produce json
// @Param input body blogRequest true "Данные блога"
// @Success 201 {object} models.Blog
// @Failure 400 {object} map[string]string
// @Router /api/blogs [post]
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	var req blogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при создании блога", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	b, err := h.svc.Create(r.Context(), &models.Blog{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		URL:         req.URL,
	})
	if err != nil {
		respondError(w, err, "Ошибка создания блога")
		return
	}
	helpers.JSON(w, http.StatusCreated, b)
}

// Update godoc
// @Summary Обновить блог
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path int true "ID блога"
// @Param input body blogRequest true "Новые данные"
// @Success 200 {object} models.Blog
// @Failure 404 {object} map[string]string
// @Router /api/blogs/{id} [put]
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req blogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при обновлении блога", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	b, err := h.svc.Update(r.Context(), id, &models.Blog{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		URL:         req.URL,
	})
	if err != nil {
		respondError(w, err, "Ошибка обновления блога")
		return
	}
	helpers.JSON(w, http.StatusOK, b)
}

// Delete godoc
// @Summary Удалить блог (вместе с авторами, рубриками и постами)
// @Tags blogs
// @Produce json
// @Param id path int true "ID блога"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/blogs/{id} [delete]
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, err, "Ошибка удаления блога")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"message": "Блог удалён"})
}
