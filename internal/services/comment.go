package services

import (
	"context"
	"fmt"
	"strings"

	"bloghub/internal/logger"
	"bloghub/internal/models"
	"bloghub/internal/repository"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type CommentService struct {
	comments repository.CommentRepo
	posts    repository.PostRepo
	policy   *bluemonday.Policy
}

func NewCommentService(comments repository.CommentRepo, posts repository.PostRepo) *CommentService {
	return &CommentService{
		comments: comments,
		posts:    posts,
		policy:   bluemonday.UGCPolicy(),
	}
}

func (s *CommentService) validate(ctx context.Context, c *models.Comment) error {
	if strings.TrimSpace(c.Content) == "" {
		return fmt.Errorf("%w: поле content обязательно", ErrValidation)
	}
	if c.PostID <= 0 {
		return fmt.Errorf("%w: поле postId обязательно", ErrValidation)
	}
	ok, err := s.posts.Exists(ctx, c.PostID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: пост %d не существует", ErrNotFound, c.PostID)
	}
	return nil
}

func (s *CommentService) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание комментария", zap.Int("post_id", c.PostID))

	if err := s.validate(ctx, c); err != nil {
		log.Warn("Валидация комментария не пройдена", zap.Error(err))
		return nil, err
	}

	c.Content = s.policy.Sanitize(c.Content)

	id, err := s.comments.Create(ctx, c)
	if err != nil {
		log.Error("Ошибка создания комментария (repo)", zap.Error(err))
		return nil, err
	}

	created, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, noRows(err)
	}
	log.Info("Комментарий создан", zap.Int("id", created.ID))
	return created, nil
}

func (s *CommentService) List(ctx context.Context, f models.CommentFilter) ([]*models.Comment, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение списка комментариев", zap.Int("limit", f.Limit), zap.Int("offset", f.Offset))

	list, err := s.comments.GetAll(ctx, f)
	if err != nil {
		log.Error("Ошибка получения списка комментариев (repo)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *CommentService) GetByID(ctx context.Context, id int) (*models.Comment, error) {
	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		logger.WithCtx(ctx).Warn("Комментарий не найден", zap.Int("id", id), zap.Error(err))
		return nil, noRows(err)
	}
	return c, nil
}

func (s *CommentService) Update(ctx context.Context, id int, c *models.Comment) (*models.Comment, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление комментария", zap.Int("id", id))

	if err := s.validate(ctx, c); err != nil {
		log.Warn("Валидация комментария не пройдена", zap.Error(err))
		return nil, err
	}

	exists, err := s.comments.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	c.ID = id
	c.Content = s.policy.Sanitize(c.Content)
	if err := s.comments.Update(ctx, c); err != nil {
		log.Error("Ошибка обновления комментария (repo)", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, noRows(err)
	}
	log.Info("Комментарий обновлён", zap.Int("id", id))
	return updated, nil
}

func (s *CommentService) Delete(ctx context.Context, id int) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление комментария", zap.Int("id", id))

	exists, err := s.comments.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления комментария (repo)", zap.Int("id", id), zap.Error(err))
		return err
	}
	log.Info("Комментарий удалён", zap.Int("id", id))
	return nil
}
