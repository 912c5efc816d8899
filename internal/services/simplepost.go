package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"

	"bloghub/internal/logger"
	"bloghub/internal/models"
	"bloghub/internal/repository"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SimplePostService — конвейер simple-постинга: URL блога плюс сырые тексты
// на входе, полностью связанные посты на выходе. Недостающие родительские
// сущности (блог, автор по умолчанию, рубрика по умолчанию) создаются на лету.
//
// Конвейер НЕ атомарен: шаги идут отдельными запросами к БД без транзакции,
// сбой посередине оставляет уже созданные строки. Блог/автор/рубрика при
// повторе переиспользуются через lookup, посты при повторе задублируются.
type SimplePostService struct {
	blogs      repository.BlogRepo
	authors    repository.AuthorRepo
	categories repository.CategoryRepo
	posts      repository.PostRepo
}

func NewSimplePostService(
	blogs repository.BlogRepo,
	authors repository.AuthorRepo,
	categories repository.CategoryRepo,
	posts repository.PostRepo,
) *SimplePostService {
	return &SimplePostService{blogs: blogs, authors: authors, categories: categories, posts: posts}
}

func (s *SimplePostService) Create(ctx context.Context, req models.SimplePostRequest) (*models.SimplePostResult, error) {
	log := logger.WithCtx(ctx)

	if strings.TrimSpace(req.BlogURL) == "" {
		return nil, fmt.Errorf("%w: поле blogUrl обязательно", ErrValidation)
	}
	if len(req.PostTexts) == 0 {
		return nil, fmt.Errorf("%w: поле postTexts должно быть непустым массивом", ErrValidation)
	}

	log.Info("Simple-постинг: старт",
		zap.String("blog_url", req.BlogURL),
		zap.Int("texts_count", len(req.PostTexts)),
	)

	blog, err := s.resolveBlog(ctx, req.BlogURL)
	if err != nil {
		log.Error("Simple-постинг: не удалось разрешить блог", zap.Error(err))
		return nil, err
	}

	author, err := s.resolveAuthor(ctx, blog)
	if err != nil {
		log.Error("Simple-постинг: не удалось разрешить автора", zap.Int("blog_id", blog.ID), zap.Error(err))
		return nil, err
	}

	category, err := s.resolveCategory(ctx, blog)
	if err != nil {
		log.Error("Simple-постинг: не удалось разрешить рубрику", zap.Int("blog_id", blog.ID), zap.Error(err))
		return nil, err
	}

	result := &models.SimplePostResult{
		Blog:     blog,
		Author:   author,
		Category: category,
		Posts:    []*models.Post{},
	}

	for i, text := range req.PostTexts {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			// пустые тексты пропускаем молча, без fallback-заголовка
			continue
		}

		now := time.Now()
		title := synthesizeTitle(trimmed, i+1)
		p := &models.Post{
			BlogID:      blog.ID,
			AuthorID:    &author.ID,
			CategoryID:  &category.ID,
			Title:       title,
			Slug:        synthesizeSlug(title, now, i),
			Content:     trimmed,
			Excerpt:     synthesizeExcerpt(trimmed),
			PublishedAt: &now,
			IsPublished: true,
			Views:       0,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		id, err := s.posts.Create(ctx, p)
		if err != nil {
			log.Error("Simple-постинг: ошибка создания поста",
				zap.Int("index", i), zap.String("title", title), zap.Error(err))
			return nil, err
		}
		created, err := s.posts.GetByID(ctx, id)
		if err != nil {
			log.Error("Simple-постинг: ошибка чтения созданного поста", zap.Int("id", id), zap.Error(err))
			return nil, err
		}

		result.Posts = append(result.Posts, created)
		result.PostsCreated++
	}

	log.Info("Simple-постинг: готово",
		zap.Int("blog_id", blog.ID),
		zap.Int("posts_created", result.PostsCreated),
	)
	return result, nil
}

// resolveBlog ищет блог по точному url; если его нет — выводит имя и slug из
// хоста и создаёт новый. Кривой URL всплывает как внутренняя ошибка, заранее
// синтаксис не проверяется.
func (s *SimplePostService) resolveBlog(ctx context.Context, blogURL string) (*models.Blog, error) {
	blog, err := s.blogs.GetByURL(ctx, blogURL)
	if err == nil {
		return blog, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	u, err := url.Parse(blogURL)
	if err != nil {
		return nil, fmt.Errorf("не удалось разобрать blogUrl: %w", err)
	}
	host := u.Hostname()
	if host == "" {
		return nil, fmt.Errorf("не удалось разобрать blogUrl: пустой хост в %q", blogURL)
	}

	name := deriveBlogName(host)
	desc := "Auto-created blog for " + host
	b := &models.Blog{
		Name:        name,
		Slug:        deriveBlogSlug(name),
		Description: &desc,
		URL:         &blogURL,
	}

	id, err := s.blogs.Create(ctx, b)
	if err != nil {
		return nil, err
	}
	return s.blogs.GetByID(ctx, id)
}

func (s *SimplePostService) resolveAuthor(ctx context.Context, blog *models.Blog) (*models.Author, error) {
	author, err := s.authors.GetFirstByBlog(ctx, blog.ID)
	if err == nil {
		return author, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	host := ""
	if blog.URL != nil {
		if u, err := url.Parse(*blog.URL); err == nil {
			host = u.Hostname()
		}
	}
	email := "author@" + host
	bio := "Auto-created default author"
	a := &models.Author{
		BlogID: blog.ID,
		Name:   "Default Author",
		Email:  &email,
		Bio:    &bio,
	}

	id, err := s.authors.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	return s.authors.GetByID(ctx, id)
}

func (s *SimplePostService) resolveCategory(ctx context.Context, blog *models.Blog) (*models.Category, error) {
	category, err := s.categories.GetFirstByBlog(ctx, blog.ID)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	slug := "general"
	c := &models.Category{
		BlogID: blog.ID,
		Name:   "General",
		Slug:   &slug,
	}

	id, err := s.categories.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	return s.categories.GetByID(ctx, id)
}

var (
	blogSlugRe = regexp.MustCompile(`[^a-z0-9]+`)
	nonWordRe  = regexp.MustCompile(`[^\w\s-]`)
	spacesRe   = regexp.MustCompile(`\s+`)
	hyphensRe  = regexp.MustCompile(`-+`)
)

// deriveBlogName строит имя блога из хоста: убирает ведущий "www.",
// отрезает последний сегмент после точки и поднимает первую букву.
func deriveBlogName(host string) string {
	name := strings.TrimPrefix(host, "www.")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[:i]
	}
	r := []rune(name)
	if len(r) == 0 {
		return name
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// deriveBlogSlug: нижний регистр, любые серии не-алфавитно-цифровых — один дефис.
func deriveBlogSlug(name string) string {
	return blogSlugRe.ReplaceAllString(strings.ToLower(name), "-")
}

// synthesizeTitle берёт текст до первого терминатора предложения (. ! ?),
// обрезает до 50 символов (с "..." если вышло ровно 50) и подставляет
// "Post {n}" при пустом результате. ordinal — 1-based позиция во входном списке.
func synthesizeTitle(text string, ordinal int) string {
	title := text
	if i := strings.IndexAny(text, ".!?"); i >= 0 {
		title = text[:i]
	}
	if r := []rune(title); len(r) > 50 {
		title = string(r[:50])
	}
	if len([]rune(title)) == 50 && !strings.HasSuffix(title, "...") {
		title += "..."
	}
	if title == "" {
		title = fmt.Sprintf("Post %d", ordinal)
	}
	return title
}

// synthesizeSlug нормализует заголовок и добавляет миллисекундную метку и
// индекс цикла — уникальность гарантирована даже для одинаковых заголовков
// внутри одной пачки.
func synthesizeSlug(title string, at time.Time, idx int) string {
	s := strings.ToLower(title)
	s = nonWordRe.ReplaceAllString(s, "")
	s = spacesRe.ReplaceAllString(s, "-")
	s = hyphensRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return fmt.Sprintf("%s-%d-%d", s, at.UnixMilli(), idx)
}

// synthesizeExcerpt — первые 150 символов плюс "...", если текст длиннее.
func synthesizeExcerpt(text string) string {
	r := []rune(text)
	if len(r) > 150 {
		return string(r[:150]) + "..."
	}
	return text
}
