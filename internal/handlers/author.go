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

type AuthorHandler struct {
	svc *services.AuthorService
}

func NewAuthorHandler(svc *services.AuthorService) *AuthorHandler {
	return &AuthorHandler{svc: svc}
}

type authorRequest struct {
	BlogID     int     `json:"blogId"`
	Name       string  `json:"name"`
	Email      *string `json:"email,omitempty"`
	ProfileURL *string `json:"profileUrl,omitempty"`
	Bio        *string `json:"bio,omitempty"`
}

func (req authorRequest) toModel() *models.Author {
	return &models.Author{
		BlogID:     req.BlogID,
		Name:       req.Name,
		Email:      req.Email,
		ProfileURL: req.ProfileURL,
		Bio:        req.Bio,
	}
}

// List godoc
// @Summary Получить список авторов (с именем блога)
// @Tags authors
// @Produce json
// @Success 200 {array} models.Author
// @Router /api/authors [get]
func (h *AuthorHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, err, "Ошибка получения авторов")
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// GetByID godoc
// @Summary Получить автора по ID
// @Tags authors
// @Produce json
// @Param id path int true "ID автора"
// @Success 200 {object} models.Author
// @Failure 404 {object} map[string]string
// @Router /api/authors/{id} [get]
func (h *AuthorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	a, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err, "Ошибка получения автора")
		return
	}
	helpers.JSON(w, http.StatusOK, a)
}

// Create godoc
// @Summary Создать автора
// @Tags authors
// @Accept json
// @Produce json
// @Param input body authorRequest true "Данные автора"
// @Success 201 {object} models.Author
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/authors [post]
func (h *AuthorHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	var req authorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при создании автора", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	a, err := h.svc.Create(r.Context(), req.toModel())
	if err != nil {
		respondError(w, err, "Ошибка создания автора")
		return
	}
	helpers.JSON(w, http.StatusCreated, a)
}

// Update godoc
// @Summary Обновить автора
// @Tags authors
// @Accept json
// @Produce json
// @Param id path int true "ID автора"
// @Param input body authorRequest true "Новые данные"
// @Success 200 {object} models.Author
// @Failure 404 {object} map[string]string
// @Router /api/authors/{id} [put]
func (h *AuthorHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req authorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при обновлении автора", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	a, err := h.svc.Update(r.Context(), id, req.toModel())
	if err != nil {
		respondError(w, err, "Ошибка обновления автора")
		return
	}
	helpers.JSON(w, http.StatusOK, a)
}

// Delete godoc
// @Summary Удалить автора
// @Tags authors
// @Produce json
// @Param id path int true "ID автора"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/authors/{id} [delete]
func (h *AuthorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, err, "Ошибка удаления автора")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"message": "Автор удалён"})
}
