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

const (
	defaultLimit  = 50
	defaultOffset = 0
)

type PostHandler struct {
	svc *services.PostService
}

func NewPostHandler(svc *services.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

// List godoc
// @Summary Получить список постов
// @Description Фильтры: blog, author, category, published, search; пагинация limit/offset (50/0)
// @Tags posts
// @Produce json
// @Param blog query int false "ID блога"
// @Param author query int false "ID автора"
// @Param category query int false "ID рубрики"
// @Param published query bool false "Только (не)опубликованные"
// @Param search query string false "Подстрока в title/content/excerpt"
// @Param limit query int false "Лимит (по умолчанию 50)"
// @Param offset query int false "Смещение (по умолчанию 0)"
// @Success 200 {array} models.Post
// @Router /api/posts [get]
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := models.PostFilter{
		BlogID:     queryInt(q.Get("blog")),
		AuthorID:   queryInt(q.Get("author")),
		CategoryID: queryInt(q.Get("category")),
		Published:  queryBool(q.Get("published")),
		Search:     q.Get("search"),
		Limit:      queryIntDef(q.Get("limit"), defaultLimit),
		Offset:     queryIntDef(q.Get("offset"), defaultOffset),
	}

	list, err := h.svc.List(r.Context(), f)
	if err != nil {
		respondError(w, err, "Ошибка получения постов")
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// GetByID godoc
// @Summary Получить пост по ID (с тегами)
// @Tags posts
// @Produce json
// @Param id path int true "ID поста"
// @Success 200 {object} models.Post
// @Failure 404 {object} map[string]string
// @Router /api/posts/{id} [get]
func (h *PostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	p, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err, "Ошибка получения поста")
		return
	}
	helpers.JSON(w, http.StatusOK, p)
}

// Create godoc
// @Summary Создать пост
// @Tags posts
// @Accept json
// @Produce json
// @Param input body models.CreatePostRequest true "Данные поста"
// @Success 201 {object} models.Post
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/posts [post]
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при создании поста", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	p, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respondError(w, err, "Ошибка создания поста")
		return
	}
	helpers.JSON(w, http.StatusCreated, p)
}

// Update godoc
// @Summary Обновить пост
// @Description Поле tags (если передано) полностью заменяет набор тегов
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "ID поста"
// @Param input body models.CreatePostRequest true "Новые данные"
// @Success 200 {object} models.Post
// @Failure 404 {object} map[string]string
// @Router /api/posts/{id} [put]
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при обновлении поста", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	p, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, err, "Ошибка обновления поста")
		return
	}
	helpers.JSON(w, http.StatusOK, p)
}

// Delete godoc
// @Summary Удалить пост (вместе с тегами и комментариями)
// @Tags posts
// @Produce json
// @Param id path int true "ID поста"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/posts/{id} [delete]
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, err, "Ошибка удаления поста")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"message": "Пост удалён"})
}

// --- разбор query-параметров ---

func queryInt(raw string) *int {
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func queryIntDef(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}

func queryBool(raw string) *bool {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
