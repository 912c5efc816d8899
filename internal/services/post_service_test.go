package services

import (
	"context"
	"errors"
	"testing"

	"bloghub/internal/models"
)

func newPostServiceEnv(t *testing.T) (*PostService, *memBlogRepo, *memPostRepo, *memTagRepo, int) {
	t.Helper()
	blogs := newMemBlogRepo()
	authors := newMemAuthorRepo()
	categories := newMemCategoryRepo()
	posts := newMemPostRepo()
	tags := newMemTagRepo()
	posts.tags = tags

	blogID, err := blogs.Create(context.Background(), &models.Blog{Name: "Test Blog", Slug: "test-blog"})
	if err != nil {
		t.Fatalf("не удалось подготовить блог: %v", err)
	}
	return NewPostService(posts, blogs, authors, categories, tags), blogs, posts, tags, blogID
}

func TestPostService_CreateValidation(t *testing.T) {
	svc, _, posts, _, blogID := newPostServiceEnv(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  models.CreatePostRequest
		want error
	}{
		{"без заголовка", models.CreatePostRequest{Slug: "s", BlogID: blogID}, ErrValidation},
		{"без slug", models.CreatePostRequest{Title: "t", BlogID: blogID}, ErrValidation},
		{"без блога", models.CreatePostRequest{Title: "t", Slug: "s"}, ErrValidation},
		{"несуществующий блог", models.CreatePostRequest{Title: "t", Slug: "s", BlogID: 999}, ErrNotFound},
	}
	for _, tc := range cases {
		if _, err := svc.Create(ctx, tc.req); !errors.Is(err, tc.want) {
			t.Errorf("%s: ожидалась %v, получено %v", tc.name, tc.want, err)
		}
	}
	if len(posts.posts) != 0 {
		t.Errorf("при ошибке валидации пост не должен записываться: постов %d", len(posts.posts))
	}
}

func TestPostService_CreateChecksForeignKeys(t *testing.T) {
	svc, _, posts, _, blogID := newPostServiceEnv(t)
	ctx := context.Background()

	badAuthor := 42
	req := models.CreatePostRequest{Title: "t", Slug: "s", BlogID: blogID, AuthorID: &badAuthor}
	if _, err := svc.Create(ctx, req); !errors.Is(err, ErrNotFound) {
		t.Errorf("несуществующий автор: ожидалась ErrNotFound, получено %v", err)
	}

	badCategory := 42
	req = models.CreatePostRequest{Title: "t", Slug: "s", BlogID: blogID, CategoryID: &badCategory}
	if _, err := svc.Create(ctx, req); !errors.Is(err, ErrNotFound) {
		t.Errorf("несуществующая рубрика: ожидалась ErrNotFound, получено %v", err)
	}

	badTags := []int{42}
	req = models.CreatePostRequest{Title: "t", Slug: "s", BlogID: blogID, Tags: &badTags}
	if _, err := svc.Create(ctx, req); !errors.Is(err, ErrNotFound) {
		t.Errorf("несуществующий тег: ожидалась ErrNotFound, получено %v", err)
	}

	if len(posts.posts) != 0 {
		t.Errorf("при ошибке FK пост не должен записываться: постов %d", len(posts.posts))
	}
}

func TestPostService_CreateWithTags(t *testing.T) {
	svc, _, _, tags, blogID := newPostServiceEnv(t)
	ctx := context.Background()

	goID, _ := tags.Create(ctx, &models.Tag{Name: "go"})
	dbID, _ := tags.Create(ctx, &models.Tag{Name: "db"})

	tagIDs := []int{goID, dbID}
	created, err := svc.Create(ctx, models.CreatePostRequest{
		Title:  "Заголовок",
		Slug:   "zagolovok",
		BlogID: blogID,
		Tags:   &tagIDs,
	})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(created.Tags) != 2 {
		t.Fatalf("ожидалось 2 тега, получено %d", len(created.Tags))
	}
	names := map[string]bool{}
	for _, tag := range created.Tags {
		names[tag.Name] = true
	}
	if !names["go"] || !names["db"] {
		t.Errorf("имена тегов: %+v", created.Tags)
	}
}

func TestPostService_PublishTimestamps(t *testing.T) {
	svc, _, _, _, blogID := newPostServiceEnv(t)
	ctx := context.Background()

	draft, err := svc.Create(ctx, models.CreatePostRequest{
		Title: "Черновик", Slug: "draft", BlogID: blogID,
	})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if draft.IsPublished || draft.PublishedAt != nil {
		t.Fatal("черновик не должен иметь published_at")
	}

	published, err := svc.Update(ctx, draft.ID, models.CreatePostRequest{
		Title: "Черновик", Slug: "draft", BlogID: blogID, IsPublished: true,
	})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if !published.IsPublished || published.PublishedAt == nil {
		t.Fatal("после публикации должен выставиться published_at")
	}
	firstPublish := *published.PublishedAt

	// повторная публикация не сдвигает отметку времени
	again, err := svc.Update(ctx, draft.ID, models.CreatePostRequest{
		Title: "Черновик v2", Slug: "draft", BlogID: blogID, IsPublished: true,
	})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if again.PublishedAt == nil || !again.PublishedAt.Equal(firstPublish) {
		t.Errorf("published_at должен сохраняться: было %v, стало %v", firstPublish, again.PublishedAt)
	}
	if again.Title != "Черновик v2" {
		t.Errorf("заголовок после обновления: получено %q", again.Title)
	}
}

func TestPostService_UpdateTagsSemantics(t *testing.T) {
	svc, _, posts, tags, blogID := newPostServiceEnv(t)
	ctx := context.Background()

	goID, _ := tags.Create(ctx, &models.Tag{Name: "go"})
	tagIDs := []int{goID}
	created, err := svc.Create(ctx, models.CreatePostRequest{
		Title: "t", Slug: "s", BlogID: blogID, Tags: &tagIDs,
	})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	// nil — набор тегов не трогаем
	kept, err := svc.Update(ctx, created.ID, models.CreatePostRequest{
		Title: "t", Slug: "s", BlogID: blogID,
	})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(kept.Tags) != 1 {
		t.Errorf("nil-теги не должны менять набор: получено %d", len(kept.Tags))
	}

	// пустой срез — полная очистка связок
	empty := []int{}
	cleared, err := svc.Update(ctx, created.ID, models.CreatePostRequest{
		Title: "t", Slug: "s", BlogID: blogID, Tags: &empty,
	})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(cleared.Tags) != 0 {
		t.Errorf("пустой срез должен очищать теги: получено %d", len(cleared.Tags))
	}
	if len(posts.postTags[created.ID]) != 0 {
		t.Errorf("связки в хранилище должны быть удалены")
	}
}

func TestPostService_UpdateNotFound(t *testing.T) {
	svc, _, _, _, blogID := newPostServiceEnv(t)

	_, err := svc.Update(context.Background(), 999, models.CreatePostRequest{
		Title: "t", Slug: "s", BlogID: blogID,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ожидалась ErrNotFound, получено %v", err)
	}
}

func TestPostService_Delete(t *testing.T) {
	svc, _, _, _, blogID := newPostServiceEnv(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.CreatePostRequest{Title: "t", Slug: "s", BlogID: blogID})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("повторное удаление: ожидалась ErrNotFound, получено %v", err)
	}
}
