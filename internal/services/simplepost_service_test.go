package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"bloghub/internal/models"
)

func simpleReq(url string, texts []string) models.SimplePostRequest {
	return models.SimplePostRequest{BlogURL: url, PostTexts: texts}
}

func newSimplePostService() (*SimplePostService, *memBlogRepo, *memAuthorRepo, *memCategoryRepo, *memPostRepo) {
	blogs := newMemBlogRepo()
	authors := newMemAuthorRepo()
	categories := newMemCategoryRepo()
	posts := newMemPostRepo()
	svc := NewSimplePostService(blogs, authors, categories, posts)
	return svc, blogs, authors, categories, posts
}

func TestSimplePost_CreatesBlogAuthorCategoryAndPost(t *testing.T) {
	svc, _, _, _, _ := newSimplePostService()

	res, err := svc.Create(context.Background(), simpleReq(
		"https://myblog.com",
		[]string{"Hello world. More text here."},
	))
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if res.Blog.Name != "Myblog" {
		t.Errorf("имя блога: ожидалось %q, получено %q", "Myblog", res.Blog.Name)
	}
	if res.Blog.Slug != "myblog" {
		t.Errorf("slug блога: ожидалось %q, получено %q", "myblog", res.Blog.Slug)
	}
	if res.Blog.Description == nil || *res.Blog.Description != "Auto-created blog for myblog.com" {
		t.Errorf("описание блога: получено %v", res.Blog.Description)
	}
	if res.Author.Name != "Default Author" {
		t.Errorf("имя автора: получено %q", res.Author.Name)
	}
	if res.Author.Email == nil || *res.Author.Email != "author@myblog.com" {
		t.Errorf("email автора: получено %v", res.Author.Email)
	}
	if res.Category.Name != "General" {
		t.Errorf("имя рубрики: получено %q", res.Category.Name)
	}

	if res.PostsCreated != 1 || len(res.Posts) != 1 {
		t.Fatalf("ожидался один созданный пост, получено %d", res.PostsCreated)
	}
	p := res.Posts[0]
	if p.Title != "Hello world" {
		t.Errorf("заголовок поста: ожидалось %q, получено %q", "Hello world", p.Title)
	}
	if p.Content != "Hello world. More text here." {
		t.Errorf("контент поста: получено %q", p.Content)
	}
	if !p.IsPublished || p.PublishedAt == nil {
		t.Error("пост должен быть сразу опубликован")
	}
	if p.AuthorID == nil || *p.AuthorID != res.Author.ID {
		t.Error("пост должен ссылаться на автора по умолчанию")
	}
	if p.CategoryID == nil || *p.CategoryID != res.Category.ID {
		t.Error("пост должен ссылаться на рубрику по умолчанию")
	}
}

func TestSimplePost_SecondCallReusesParents(t *testing.T) {
	svc, blogs, authors, categories, posts := newSimplePostService()
	ctx := context.Background()

	first, err := svc.Create(ctx, simpleReq("https://myblog.com", []string{"Первый текст."}))
	if err != nil {
		t.Fatalf("первый вызов: %v", err)
	}
	second, err := svc.Create(ctx, simpleReq("https://myblog.com", []string{"Второй текст."}))
	if err != nil {
		t.Fatalf("второй вызов: %v", err)
	}

	if len(blogs.blogs) != 1 || len(authors.authors) != 1 || len(categories.categories) != 1 {
		t.Errorf("родители должны переиспользоваться: blogs=%d authors=%d categories=%d",
			len(blogs.blogs), len(authors.authors), len(categories.categories))
	}
	if first.Blog.ID != second.Blog.ID {
		t.Error("оба вызова должны разрешаться в один и тот же блог")
	}
	// а вот посты дублируются — уникальность постов нигде не проверяется
	if len(posts.posts) != 2 {
		t.Errorf("ожидалось 2 поста, получено %d", len(posts.posts))
	}
}

func TestSimplePost_SkipsBlankTexts(t *testing.T) {
	svc, _, _, _, _ := newSimplePostService()

	res, err := svc.Create(context.Background(),
		simpleReq("https://myblog.com", []string{"   ", "Valid post text."}))
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if res.PostsCreated != 1 {
		t.Fatalf("пустой текст должен пропускаться: postsCreated=%d", res.PostsCreated)
	}
	if res.Posts[0].Title != "Valid post text" {
		t.Errorf("заголовок: получено %q", res.Posts[0].Title)
	}
}

func TestSimplePost_ValidationNoSideEffects(t *testing.T) {
	svc, blogs, _, _, posts := newSimplePostService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, simpleReq("", []string{"x"})); !errors.Is(err, ErrValidation) {
		t.Errorf("пустой blogUrl: ожидалась ErrValidation, получено %v", err)
	}
	if _, err := svc.Create(ctx, simpleReq("https://myblog.com", nil)); !errors.Is(err, ErrValidation) {
		t.Errorf("пустой postTexts: ожидалась ErrValidation, получено %v", err)
	}
	if len(blogs.blogs) != 0 || len(posts.posts) != 0 {
		t.Error("при ошибке валидации ничего не должно записываться")
	}
}

func TestSimplePost_StripsWWWFromHost(t *testing.T) {
	svc, _, _, _, _ := newSimplePostService()

	res, err := svc.Create(context.Background(),
		simpleReq("https://www.example.org", []string{"Текст поста."}))
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if res.Blog.Name != "Example" {
		t.Errorf("имя блога: ожидалось %q, получено %q", "Example", res.Blog.Name)
	}
	if res.Blog.Slug != "example" {
		t.Errorf("slug блога: получено %q", res.Blog.Slug)
	}
	if res.Author.Email == nil || *res.Author.Email != "author@www.example.org" {
		t.Errorf("email автора строится от полного хоста: получено %v", res.Author.Email)
	}
}

func TestSimplePost_UniqueSlugsWithinBatch(t *testing.T) {
	svc, _, _, _, _ := newSimplePostService()

	res, err := svc.Create(context.Background(),
		simpleReq("https://myblog.com", []string{"Одинаковый текст.", "Одинаковый текст."}))
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if res.PostsCreated != 2 {
		t.Fatalf("ожидалось 2 поста, получено %d", res.PostsCreated)
	}
	if res.Posts[0].Slug == res.Posts[1].Slug {
		t.Errorf("slug должны различаться даже при одинаковых заголовках: %q", res.Posts[0].Slug)
	}
}

func TestSynthesizeTitle(t *testing.T) {
	long := strings.Repeat("a", 60)
	cases := []struct {
		name    string
		text    string
		ordinal int
		want    string
	}{
		{"до первой точки", "Hello world. More text here.", 1, "Hello world"},
		{"до восклицательного знака", "Wow! And more", 1, "Wow"},
		{"без терминатора", "Short title", 1, "Short title"},
		{"обрезка до 50 с многоточием", long, 1, strings.Repeat("a", 50) + "..."},
		{"fallback при пустом заголовке", ".starts with dot", 3, "Post 3"},
	}
	for _, tc := range cases {
		if got := synthesizeTitle(tc.text, tc.ordinal); got != tc.want {
			t.Errorf("%s: ожидалось %q, получено %q", tc.name, tc.want, got)
		}
	}
}

func TestSynthesizeTitle_Exactly50NoDuplicateEllipsis(t *testing.T) {
	text := strings.Repeat("b", 47) + "..."
	if got := synthesizeTitle(text, 1); got != text {
		t.Errorf("заголовок уже кончается на многоточие: получено %q", got)
	}
}

func TestSynthesizeExcerpt(t *testing.T) {
	exact := strings.Repeat("x", 150)
	if got := synthesizeExcerpt(exact); got != exact {
		t.Errorf("ровно 150 символов — без многоточия, получено %d символов", len(got))
	}

	longer := strings.Repeat("x", 151)
	want := strings.Repeat("x", 150) + "..."
	if got := synthesizeExcerpt(longer); got != want {
		t.Errorf("151 символ: ожидались первые 150 плюс многоточие")
	}

	short := "короткий текст"
	if got := synthesizeExcerpt(short); got != short {
		t.Errorf("короткий текст возвращается как есть, получено %q", got)
	}
}

func TestSynthesizeSlug(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	got := synthesizeSlug("Hello,  World -- Again!", at, 2)
	want := "hello-world-again-1700000000000-2"
	if got != want {
		t.Errorf("ожидалось %q, получено %q", want, got)
	}
}

func TestDeriveBlogName(t *testing.T) {
	cases := map[string]string{
		"myblog.com":      "Myblog",
		"www.example.org": "Example",
		"blog.dev.io":     "Blog.dev",
	}
	for host, want := range cases {
		if got := deriveBlogName(host); got != want {
			t.Errorf("%s: ожидалось %q, получено %q", host, want, got)
		}
	}
}
