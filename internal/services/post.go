package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bloghub/internal/logger"
	"bloghub/internal/models"
	"bloghub/internal/repository"

	"go.uber.org/zap"
)

type PostService struct {
	posts      repository.PostRepo
	blogs      repository.BlogRepo
	authors    repository.AuthorRepo
	categories repository.CategoryRepo
	tags       repository.TagRepo
}

func NewPostService(
	posts repository.PostRepo,
	blogs repository.BlogRepo,
	authors repository.AuthorRepo,
	categories repository.CategoryRepo,
	tags repository.TagRepo,
) *PostService {
	return &PostService{posts: posts, blogs: blogs, authors: authors, categories: categories, tags: tags}
}

// validate проверяет обязательные поля и существование всех внешних ключей
// до какой-либо записи в БД.
func (s *PostService) validate(ctx context.Context, req models.CreatePostRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: поле title обязательно", ErrValidation)
	}
	if strings.TrimSpace(req.Slug) == "" {
		return fmt.Errorf("%w: поле slug обязательно", ErrValidation)
	}
	if req.BlogID <= 0 {
		return fmt.Errorf("%w: поле blogId обязательно", ErrValidation)
	}

	ok, err := s.blogs.Exists(ctx, req.BlogID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: блог %d не существует", ErrNotFound, req.BlogID)
	}
	if req.AuthorID != nil {
		ok, err := s.authors.Exists(ctx, *req.AuthorID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: автор %d не существует", ErrNotFound, *req.AuthorID)
		}
	}
	if req.CategoryID != nil {
		ok, err := s.categories.Exists(ctx, *req.CategoryID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: рубрика %d не существует", ErrNotFound, *req.CategoryID)
		}
	}
	if req.Tags != nil {
		for _, tagID := range *req.Tags {
			ok, err := s.tags.Exists(ctx, tagID)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: тег %d не существует", ErrNotFound, tagID)
			}
		}
	}
	return nil
}

func (s *PostService) Create(ctx context.Context, req models.CreatePostRequest) (*models.Post, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание поста",
		zap.String("title", strings.TrimSpace(req.Title)),
		zap.Int("blog_id", req.BlogID),
		zap.Bool("publish", req.IsPublished),
	)

	if err := s.validate(ctx, req); err != nil {
		log.Warn("Валидация поста не пройдена", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	p := &models.Post{
		BlogID:      req.BlogID,
		AuthorID:    req.AuthorID,
		CategoryID:  req.CategoryID,
		Title:       strings.TrimSpace(req.Title),
		Slug:        req.Slug,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		IsPublished: req.IsPublished,
		ExternalID:  req.ExternalID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.IsPublished {
		p.PublishedAt = &now
	}

	id, err := s.posts.Create(ctx, p)
	if err != nil {
		log.Error("Ошибка создания поста (repo)", zap.Error(err))
		return nil, err
	}

	if req.Tags != nil {
		if err := s.posts.ReplaceTags(ctx, id, *req.Tags); err != nil {
			log.Error("Ошибка привязки тегов к посту (repo)", zap.Int("id", id), zap.Error(err))
			return nil, err
		}
	}

	created, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, noRows(err)
	}
	log.Info("Пост создан", zap.Int("id", created.ID), zap.String("slug", created.Slug))
	return created, nil
}

func (s *PostService) List(ctx context.Context, f models.PostFilter) ([]*models.Post, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение списка постов",
		zap.Int("limit", f.Limit),
		zap.Int("offset", f.Offset),
		zap.String("search", f.Search),
	)

	list, err := s.posts.GetAll(ctx, f)
	if err != nil {
		log.Error("Ошибка получения списка постов (repo)", zap.Error(err))
		return nil, err
	}
	log.Debug("Список постов получен", zap.Int("count", len(list)))
	return list, nil
}

func (s *PostService) GetByID(ctx context.Context, id int) (*models.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		logger.WithCtx(ctx).Warn("Пост не найден", zap.Int("id", id), zap.Error(err))
		return nil, noRows(err)
	}
	return p, nil
}

func (s *PostService) Update(ctx context.Context, id int, req models.CreatePostRequest) (*models.Post, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление поста", zap.Int("id", id))

	if err := s.validate(ctx, req); err != nil {
		log.Warn("Валидация поста не пройдена", zap.Error(err))
		return nil, err
	}

	existing, err := s.posts.GetByID(ctx, id)
	if err != nil {
		log.Warn("Пост для обновления не найден", zap.Int("id", id), zap.Error(err))
		return nil, noRows(err)
	}

	existing.BlogID = req.BlogID
	existing.AuthorID = req.AuthorID
	existing.CategoryID = req.CategoryID
	existing.Title = strings.TrimSpace(req.Title)
	existing.Slug = req.Slug
	existing.Content = req.Content
	existing.Excerpt = req.Excerpt
	existing.ExternalID = req.ExternalID

	// published_at выставляется при первом переходе в published и дальше не сбрасывается
	if req.IsPublished && existing.PublishedAt == nil {
		now := time.Now()
		existing.PublishedAt = &now
	}
	existing.IsPublished = req.IsPublished

	if err := s.posts.Update(ctx, existing); err != nil {
		log.Error("Ошибка обновления поста (repo)", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	// nil — теги не трогаем, не-nil (в т.ч. пустой) — полная замена набора
	if req.Tags != nil {
		if err := s.posts.ReplaceTags(ctx, id, *req.Tags); err != nil {
			log.Error("Ошибка замены тегов поста (repo)", zap.Int("id", id), zap.Error(err))
			return nil, err
		}
	}

	updated, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, noRows(err)
	}
	log.Info("Пост обновлён", zap.Int("id", id))
	return updated, nil
}

func (s *PostService) Delete(ctx context.Context, id int) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление поста", zap.Int("id", id))

	exists, err := s.posts.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	// Связки с тегами и комментарии удаляются каскадом на стороне БД
	if err := s.posts.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления поста (repo)", zap.Int("id", id), zap.Error(err))
		return err
	}
	log.Info("Пост удалён", zap.Int("id", id))
	return nil
}
