package handlers

import (
	"errors"
	"net/http"

	"bloghub/internal/services"
	helpers "bloghub/internal/utils/helpers"
)

// respondError мапит сентинели сервисного слоя на HTTP-статусы.
// Неожиданные ошибки наружу не раскрываем — только generic-сообщение.
func respondError(w http.ResponseWriter, err error, internalMsg string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		helpers.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		helpers.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrConflict):
		helpers.Error(w, http.StatusConflict, err.Error())
	default:
		helpers.Error(w, http.StatusInternalServerError, internalMsg)
	}
}
