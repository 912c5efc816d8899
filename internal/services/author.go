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

type AuthorService struct {
	authors repository.AuthorRepo
	blogs   repository.BlogRepo
}

func NewAuthorService(authors repository.AuthorRepo, blogs repository.BlogRepo) *AuthorService {
	return &AuthorService{authors: authors, blogs: blogs}
}

func (s *AuthorService) validate(ctx context.Context, a *models.Author) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: поле name обязательно", ErrValidation)
	}
	if a.BlogID <= 0 {
		return fmt.Errorf("%w: поле blogId обязательно", ErrValidation)
	}
	ok, err := s.blogs.Exists(ctx, a.BlogID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: блог %d не существует", ErrNotFound, a.BlogID)
	}
	return nil
}

func (s *AuthorService) Create(ctx context.Context, a *models.Author) (*models.Author, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание автора", zap.String("name", a.Name), zap.Int("blog_id", a.BlogID))

	if err := s.validate(ctx, a); err != nil {
		log.Warn("Валидация автора не пройдена", zap.Error(err))
		return nil, err
	}

	id, err := s.authors.Create(ctx, a)
	if err != nil {
		log.Error("Ошибка создания автора (repo)", zap.Error(err))
		return nil, err
	}

	created, err := s.authors.GetByID(ctx, id)
	if err != nil {
		return nil, noRows(err)
	}
	log.Info("Автор создан", zap.Int("id", created.ID))
	return created, nil
}

func (s *AuthorService) List(ctx context.Context) ([]*models.Author, error) {
	list, err := s.authors.GetAll(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения списка авторов (repo)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *AuthorService) GetByID(ctx context.Context, id int) (*models.Author, error) {
	a, err := s.authors.GetByID(ctx, id)
	if err != nil {
		logger.WithCtx(ctx).Warn("Автор не найден", zap.Int("id", id), zap.Error(err))
		return nil, noRows(err)
	}
	return a, nil
}

func (s *AuthorService) Update(ctx context.Context, id int, a *models.Author) (*models.Author, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление автора", zap.Int("id", id))

	if err := s.validate(ctx, a); err != nil {
		log.Warn("Валидация автора не пройдена", zap.Error(err))
		return nil, err
	}

	exists, err := s.authors.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	a.ID = id
	if err := s.authors.Update(ctx, a); err != nil {
		log.Error("Ошибка обновления автора (repo)", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.authors.GetByID(ctx, id)
	if err != nil {
		return nil, noRows(err)
	}
	log.Info("Автор обновлён", zap.Int("id", id))
	return updated, nil
}

func (s *AuthorService) Delete(ctx context.Context, id int) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление автора", zap.Int("id", id))

	exists, err := s.authors.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	if err := s.authors.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления автора (repo)", zap.Int("id", id), zap.Error(err))
		return err
	}
	log.Info("Автор удалён", zap.Int("id", id))
	return nil
}
