package services

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// Сентинели для маппинга на HTTP-статусы в хендлерах (errors.Is).
var (
	ErrValidation = errors.New("неверные данные")
	ErrNotFound   = errors.New("не найдено")
	ErrConflict   = errors.New("конфликт")
)

// noRows переводит pgx.ErrNoRows в ErrNotFound, остальное отдаёт как есть.
func noRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
