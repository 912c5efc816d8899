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

type CategoryService struct {
	categories repository.CategoryRepo
	blogs      repository.BlogRepo
}

func NewCategoryService(categories repository.CategoryRepo, blogs repository.BlogRepo) *CategoryService {
	return &CategoryService{categories: categories, blogs: blogs}
}

func (s *CategoryService) validate(ctx context.Context, c *models.Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: поле name обязательно", ErrValidation)
	}
	if c.BlogID <= 0 {
		return fmt.Errorf("%w: поле blogId обязательно", ErrValidation)
	}
	ok, err := s.blogs.Exists(ctx, c.BlogID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: блог %d не существует", ErrNotFound, c.BlogID)
	}
	return nil
}

func (s *CategoryService) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание рубрики", zap.String("name", c.Name), zap.Int("blog_id", c.BlogID))

	if err := s.validate(ctx, c); err != nil {
		log.Warn("Валидация рубрики не пройдена", zap.Error(err))
		return nil, err
	}

	id, err := s.categories.Create(ctx, c)
	if err != nil {
		log.Error("Ошибка создания рубрики (repo)", zap.Error(err))
		return nil, err
	}

	created, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, noRows(err)
	}
	log.Info("Рубрика создана", zap.Int("id", created.ID))
	return created, nil
}

func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	list, err := s.categories.GetAll(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения списка рубрик (repo)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id int) (*models.Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		logger.WithCtx(ctx).Warn("Рубрика не найдена", zap.Int("id", id), zap.Error(err))
		return nil, noRows(err)
	}
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, id int, c *models.Category) (*models.Category, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление рубрики", zap.Int("id", id))

	if err := s.validate(ctx, c); err != nil {
		log.Warn("Валидация рубрики не пройдена", zap.Error(err))
		return nil, err
	}

	exists, err := s.categories.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	c.ID = id
	if err := s.categories.Update(ctx, c); err != nil {
		log.Error("Ошибка обновления рубрики (repo)", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, noRows(err)
	}
	log.Info("Рубрика обновлена", zap.Int("id", id))
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление рубрики", zap.Int("id", id))

	exists, err := s.categories.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления рубрики (repo)", zap.Int("id", id), zap.Error(err))
		return err
	}
	log.Info("Рубрика удалена", zap.Int("id", id))
	return nil
}
