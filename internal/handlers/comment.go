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

type CommentHandler struct {
	svc *services.CommentService
}

func NewCommentHandler(svc *services.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

type commentRequest struct {
	PostID      int     `json:"postId"`
	AuthorName  *string `json:"authorName,omitempty"`
	AuthorEmail *string `json:"authorEmail,omitempty"`
	Content     string  `json:"content"`
	IsApproved  bool    `json:"isApproved"`
	ExternalID  *string `json:"externalId,omitempty"`
}

func (req commentRequest) toModel() *models.Comment {
	return &models.Comment{
		PostID:      req.PostID,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Content:     req.Content,
		IsApproved:  req.IsApproved,
		ExternalID:  req.ExternalID,
	}
}

// List godoc
// @Summary Получить список комментариев
// @Description Фильтры: post, approved; пагинация limit/offset (50/0)
// @Tags comments
// @Produce json
// @Param post query int false "ID поста"
// @Param approved query bool false "Только (не)одобренные"
// @Param limit query int false "Лимит (по умолчанию 50)"
// @Param offset query int false "Смещение (по умолчанию 0)"
// @Success 200 {array} models.Comment
// @Router /api/comments [get]
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := models.CommentFilter{
		PostID:   queryInt(q.Get("post")),
		Approved: queryBool(q.Get("approved")),
		Limit:    queryIntDef(q.Get("limit"), defaultLimit),
		Offset:   queryIntDef(q.Get("offset"), defaultOffset),
	}

	list, err := h.svc.List(r.Context(), f)
	if err != nil {
		respondError(w, err, "Ошибка получения комментариев")
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// GetByID godoc
// @Summary Получить комментарий по ID (с заголовком и slug поста)
// @Tags comments
// @Produce json
// @Param id path int true "ID комментария"
// @Success 200 {object} models.Comment
// @Failure 404 {object} map[string]string
// @Router /api/comments/{id} [get]
func (h *CommentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	c, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err, "Ошибка получения комментария")
		return
	}
	helpers.JSON(w, http.StatusOK, c)
}

// Create godoc
// @Summary Создать комментарий
// @Tags comments
// @Accept json
// @Produce json
// @Param input body commentRequest true "Данные комментария"
// @Success 201 {object} models.Comment
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/comments [post]
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при создании комментария", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	c, err := h.svc.Create(r.Context(), req.toModel())
	if err != nil {
		respondError(w, err, "Ошибка создания комментария")
		return
	}
	helpers.JSON(w, http.StatusCreated, c)
}

// Update godoc
// @Summary Обновить комментарий
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "ID комментария"
// @Param input body commentRequest true "Новые данные"
// @Success 200 {object} models.Comment
// @Failure 404 {object} map[string]string
// @Router /api/comments/{id} [put]
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при обновлении комментария", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	c, err := h.svc.Update(r.Context(), id, req.toModel())
	if err != nil {
		respondError(w, err, "Ошибка обновления комментария")
		return
	}
	helpers.JSON(w, http.StatusOK, c)
}

// Delete godoc
// @Summary Удалить комментарий
// @Tags comments
// @Produce json
// @Param id path int true "ID комментария"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/comments/{id} [delete]
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, err, "Ошибка удаления комментария")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"message": "Комментарий удалён"})
}
