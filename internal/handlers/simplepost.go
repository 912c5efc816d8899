package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"bloghub/internal/logger"
	"bloghub/internal/models"
	"bloghub/internal/services"
	helpers "bloghub/internal/utils/helpers"

	"go.uber.org/zap"
)

type SimplePostHandler struct {
	svc *services.SimplePostService
}

func NewSimplePostHandler(svc *services.SimplePostService) *SimplePostHandler {
	return &SimplePostHandler{svc: svc}
}

// Create godoc
// @Summary Создать пачку постов из сырых текстов
// @Description Находит или создаёт блог по URL, автора и рубрику по умолчанию,
// @Description затем создаёт по посту на каждый непустой текст. Не атомарно:
// @Description при сбое посередине уже созданные записи остаются.
// @Tags simple
// @Accept json
// @Produce json
// @Param input body models.SimplePostRequest true "URL блога и тексты постов"
// @Success 201 {object} models.SimplePostResult
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/simple [post]
func (h *SimplePostHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req models.SimplePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при simple-постинге", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	result, err := h.svc.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			helpers.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		// любые остальные сбои конвейера — generic-ответ, детали только в логах
		log.Error("Ошибка simple-постинга", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка создания постов")
		return
	}

	helpers.JSON(w, http.StatusCreated, result)
}
