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

type BlogService struct {
	repo repository.BlogRepo
}

func NewBlogService(repo repository.BlogRepo) *BlogService {
	return &BlogService{repo: repo}
}

func (s *BlogService) Create(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание блога", zap.String("name", b.Name), zap.String("slug", b.Slug))

	if strings.TrimSpace(b.Name) == "" {
		return nil, fmt.Errorf("%w: поле name обязательно", ErrValidation)
	}
	if strings.TrimSpace(b.Slug) == "" {
		return nil, fmt.Errorf("%w: поле slug обязательно", ErrValidation)
	}

	id, err := s.repo.Create(ctx, b)
	if err != nil {
		log.Error("Ошибка создания блога (repo)", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error("Ошибка чтения созданного блога (repo)", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	log.Info("Блог создан", zap.Int("id", created.ID), zap.String("slug", created.Slug))
	return created, nil
}

func (s *BlogService) List(ctx context.Context) ([]*models.Blog, error) {
	log := logger.WithCtx(ctx)
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error("Ошибка получения списка блогов (repo)", zap.Error(err))
		return nil, err
	}
	log.Debug("Список блогов получен", zap.Int("count", len(list)))
	return list, nil
}

func (s *BlogService) GetByID(ctx context.Context, id int) (*models.Blog, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.WithCtx(ctx).Warn("Блог не найден", zap.Int("id", id), zap.Error(err))
		return nil, noRows(err)
	}
	return b, nil
}

func (s *BlogService) Update(ctx context.Context, id int, b *models.Blog) (*models.Blog, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление блога", zap.Int("id", id))

	if strings.TrimSpace(b.Name) == "" {
		return nil, fmt.Errorf("%w: поле name обязательно", ErrValidation)
	}
	if strings.TrimSpace(b.Slug) == "" {
		return nil, fmt.Errorf("%w: поле slug обязательно", ErrValidation)
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		log.Error("Ошибка проверки существования блога (repo)", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	if !exists {
		log.Warn("Блог для обновления не найден", zap.Int("id", id))
		return nil, ErrNotFound
	}

	b.ID = id
	if err := s.repo.Update(ctx, b); err != nil {
		log.Error("Ошибка обновления блога (repo)", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, noRows(err)
	}
	log.Info("Блог обновлён", zap.Int("id", id))
	return updated, nil
}

func (s *BlogService) Delete(ctx context.Context, id int) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление блога", zap.Int("id", id))

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		log.Error("Ошибка проверки существования блога (repo)", zap.Int("id", id), zap.Error(err))
		return err
	}
	if !exists {
		return ErrNotFound
	}

	// Авторы, рубрики и посты блога удаляются каскадом на стороне БД
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления блога (repo)", zap.Int("id", id), zap.Error(err))
		return err
	}

	log.Info("Блог удалён", zap.Int("id", id))
	return nil
}
