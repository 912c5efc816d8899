package services

import (
	"context"
	"fmt"
	"strings"

	"bloghub/internal/logger"
	"bloghub/internal/models"
	"bloghub/internal/repository"

	"go.uber.org/zap"
)

type TagService struct {
	repo repository.TagRepo
}

func NewTagService(repo repository.TagRepo) *TagService {
	return &TagService{repo: repo}
}

func (s *TagService) Create(ctx context.Context, t *models.Tag) (*models.Tag, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание тега", zap.String("name", t.Name))

	if strings.TrimSpace(t.Name) == "" {
		return nil, fmt.Errorf("%w: поле name обязательно", ErrValidation)
	}

	// Уникальность имени проверяем до записи: дубликат — конфликт, не валидация
	taken, err := s.repo.NameExists(ctx, t.Name, 0)
	if err != nil {
		log.Error("Ошибка проверки имени тега (repo)", zap.Error(err))
		return nil, err
	}
	if taken {
		log.Warn("Тег с таким именем уже существует", zap.String("name", t.Name))
		return nil, fmt.Errorf("%w: тег %q уже существует", ErrConflict, t.Name)
	}

	id, err := s.repo.Create(ctx, t)
	if err != nil {
		log.Error("Ошибка создания тега (repo)", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, noRows(err)
	}
	log.Info("Тег создан", zap.Int("id", created.ID))
	return created, nil
}

func (s *TagService) List(ctx context.Context) ([]*models.Tag, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения списка тегов (repo)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *TagService) GetByID(ctx context.Context, id int) (*models.Tag, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.WithCtx(ctx).Warn("Тег не найден", zap.Int("id", id), zap.Error(err))
		return nil, noRows(err)
	}
	return t, nil
}

func (s *TagService) Update(ctx context.Context, id int, t *models.Tag) (*models.Tag, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление тега", zap.Int("id", id), zap.String("name", t.Name))

	if strings.TrimSpace(t.Name) == "" {
		return nil, fmt.Errorf("%w: поле name обязательно", ErrValidation)
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	taken, err := s.repo.NameExists(ctx, t.Name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		log.Warn("Тег с таким именем уже существует", zap.String("name", t.Name))
		return nil, fmt.Errorf("%w: тег %q уже существует", ErrConflict, t.Name)
	}

	t.ID = id
	if err := s.repo.Update(ctx, t); err != nil {
		log.Error("Ошибка обновления тега (repo)", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, noRows(err)
	}
	log.Info("Тег обновлён", zap.Int("id", id))
	return updated, nil
}

func (s *TagService) Delete(ctx context.Context, id int) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление тега", zap.Int("id", id))

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	// Уходят только связки post_tags, сами посты остаются
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления тега (repo)", zap.Int("id", id), zap.Error(err))
		return err
	}
	log.Info("Тег удалён", zap.Int("id", id))
	return nil
}
