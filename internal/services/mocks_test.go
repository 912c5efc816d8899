package services

import (
	"context"
	"sort"
	"time"

	"bloghub/internal/models"

	"github.com/jackc/pgx/v5"
)

// In-memory заглушки репозиториев для сервисных тестов.
// Отсутствующие строки отдают pgx.ErrNoRows — как настоящий pgx.

type memBlogRepo struct {
	seq   int
	blogs map[int]*models.Blog
}

func newMemBlogRepo() *memBlogRepo { return &memBlogRepo{blogs: map[int]*models.Blog{}} }

func (m *memBlogRepo) Create(_ context.Context, b *models.Blog) (int, error) {
	m.seq++
	nb := *b
	nb.ID = m.seq
	nb.CreatedAt = time.Now()
	m.blogs[nb.ID] = &nb
	return nb.ID, nil
}

func (m *memBlogRepo) GetAll(_ context.Context) ([]*models.Blog, error) {
	var out []*models.Blog
	for _, id := range sortedKeys(m.blogs) {
		b := *m.blogs[id]
		out = append(out, &b)
	}
	return out, nil
}

func (m *memBlogRepo) GetByID(_ context.Context, id int) (*models.Blog, error) {
	b, ok := m.blogs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *b
	return &cp, nil
}

func (m *memBlogRepo) GetByURL(_ context.Context, url string) (*models.Blog, error) {
	for _, id := range sortedKeys(m.blogs) {
		b := m.blogs[id]
		if b.URL != nil && *b.URL == url {
			cp := *b
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memBlogRepo) Update(_ context.Context, b *models.Blog) error {
	if _, ok := m.blogs[b.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *b
	cp.CreatedAt = m.blogs[b.ID].CreatedAt
	m.blogs[b.ID] = &cp
	return nil
}

func (m *memBlogRepo) Delete(_ context.Context, id int) error {
	delete(m.blogs, id)
	return nil
}

func (m *memBlogRepo) Exists(_ context.Context, id int) (bool, error) {
	_, ok := m.blogs[id]
	return ok, nil
}

type memAuthorRepo struct {
	seq     int
	authors map[int]*models.Author
}

func newMemAuthorRepo() *memAuthorRepo { return &memAuthorRepo{authors: map[int]*models.Author{}} }

func (m *memAuthorRepo) Create(_ context.Context, a *models.Author) (int, error) {
	m.seq++
	na := *a
	na.ID = m.seq
	na.CreatedAt = time.Now()
	m.authors[na.ID] = &na
	return na.ID, nil
}

func (m *memAuthorRepo) GetAll(_ context.Context) ([]*models.Author, error) {
	var out []*models.Author
	for _, id := range sortedKeys(m.authors) {
		a := *m.authors[id]
		out = append(out, &a)
	}
	return out, nil
}

func (m *memAuthorRepo) GetByID(_ context.Context, id int) (*models.Author, error) {
	a, ok := m.authors[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *a
	return &cp, nil
}

func (m *memAuthorRepo) GetFirstByBlog(_ context.Context, blogID int) (*models.Author, error) {
	for _, id := range sortedKeys(m.authors) {
		if m.authors[id].BlogID == blogID {
			cp := *m.authors[id]
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memAuthorRepo) Update(_ context.Context, a *models.Author) error {
	if _, ok := m.authors[a.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *a
	m.authors[a.ID] = &cp
	return nil
}

func (m *memAuthorRepo) Delete(_ context.Context, id int) error {
	delete(m.authors, id)
	return nil
}

func (m *memAuthorRepo) Exists(_ context.Context, id int) (bool, error) {
	_, ok := m.authors[id]
	return ok, nil
}

type memCategoryRepo struct {
	seq        int
	categories map[int]*models.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: map[int]*models.Category{}}
}

func (m *memCategoryRepo) Create(_ context.Context, c *models.Category) (int, error) {
	m.seq++
	nc := *c
	nc.ID = m.seq
	m.categories[nc.ID] = &nc
	return nc.ID, nil
}

func (m *memCategoryRepo) GetAll(_ context.Context) ([]*models.Category, error) {
	var out []*models.Category
	for _, id := range sortedKeys(m.categories) {
		c := *m.categories[id]
		out = append(out, &c)
	}
	return out, nil
}

func (m *memCategoryRepo) GetByID(_ context.Context, id int) (*models.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *c
	return &cp, nil
}

func (m *memCategoryRepo) GetFirstByBlog(_ context.Context, blogID int) (*models.Category, error) {
	for _, id := range sortedKeys(m.categories) {
		if m.categories[id].BlogID == blogID {
			cp := *m.categories[id]
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memCategoryRepo) Update(_ context.Context, c *models.Category) error {
	if _, ok := m.categories[c.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *c
	m.categories[c.ID] = &cp
	return nil
}

func (m *memCategoryRepo) Delete(_ context.Context, id int) error {
	delete(m.categories, id)
	return nil
}

func (m *memCategoryRepo) Exists(_ context.Context, id int) (bool, error) {
	_, ok := m.categories[id]
	return ok, nil
}

type memPostRepo struct {
	seq      int
	posts    map[int]*models.Post
	postTags map[int][]int
	tags     *memTagRepo // для отдачи тегов в GetByID (может быть nil)
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: map[int]*models.Post{}, postTags: map[int][]int{}}
}

func (m *memPostRepo) Create(_ context.Context, p *models.Post) (int, error) {
	m.seq++
	np := *p
	np.ID = m.seq
	m.posts[np.ID] = &np
	return np.ID, nil
}

func (m *memPostRepo) GetAll(_ context.Context, f models.PostFilter) ([]*models.Post, error) {
	var out []*models.Post
	for _, id := range sortedKeys(m.posts) {
		p := m.posts[id]
		if f.BlogID != nil && p.BlogID != *f.BlogID {
			continue
		}
		if f.Published != nil && p.IsPublished != *f.Published {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memPostRepo) GetByID(ctx context.Context, id int) (*models.Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *p
	tags, _ := m.GetTags(ctx, id)
	cp.Tags = tags
	return &cp, nil
}

func (m *memPostRepo) Update(_ context.Context, p *models.Post) error {
	if _, ok := m.posts[p.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *p
	m.posts[p.ID] = &cp
	return nil
}

func (m *memPostRepo) Delete(_ context.Context, id int) error {
	delete(m.posts, id)
	delete(m.postTags, id)
	return nil
}

func (m *memPostRepo) Exists(_ context.Context, id int) (bool, error) {
	_, ok := m.posts[id]
	return ok, nil
}

func (m *memPostRepo) GetTags(_ context.Context, postID int) ([]models.Tag, error) {
	out := []models.Tag{}
	for _, tagID := range m.postTags[postID] {
		name := ""
		if m.tags != nil {
			if t, ok := m.tags.tags[tagID]; ok {
				name = t.Name
			}
		}
		out = append(out, models.Tag{ID: tagID, Name: name})
	}
	return out, nil
}

func (m *memPostRepo) ReplaceTags(_ context.Context, postID int, tagIDs []int) error {
	m.postTags[postID] = append([]int{}, tagIDs...)
	return nil
}

type memTagRepo struct {
	seq  int
	tags map[int]*models.Tag
}

func newMemTagRepo() *memTagRepo { return &memTagRepo{tags: map[int]*models.Tag{}} }

func (m *memTagRepo) Create(_ context.Context, t *models.Tag) (int, error) {
	m.seq++
	nt := *t
	nt.ID = m.seq
	m.tags[nt.ID] = &nt
	return nt.ID, nil
}

func (m *memTagRepo) GetAll(_ context.Context) ([]*models.Tag, error) {
	var out []*models.Tag
	for _, id := range sortedKeys(m.tags) {
		t := *m.tags[id]
		out = append(out, &t)
	}
	return out, nil
}

func (m *memTagRepo) GetByID(_ context.Context, id int) (*models.Tag, error) {
	t, ok := m.tags[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *t
	return &cp, nil
}

func (m *memTagRepo) Update(_ context.Context, t *models.Tag) error {
	if _, ok := m.tags[t.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *t
	m.tags[t.ID] = &cp
	return nil
}

func (m *memTagRepo) Delete(_ context.Context, id int) error {
	delete(m.tags, id)
	return nil
}

func (m *memTagRepo) Exists(_ context.Context, id int) (bool, error) {
	_, ok := m.tags[id]
	return ok, nil
}

func (m *memTagRepo) NameExists(_ context.Context, name string, exceptID int) (bool, error) {
	for _, t := range m.tags {
		if t.Name == name && t.ID != exceptID {
			return true, nil
		}
	}
	return false, nil
}

type memCommentRepo struct {
	seq      int
	comments map[int]*models.Comment
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: map[int]*models.Comment{}}
}

func (m *memCommentRepo) Create(_ context.Context, c *models.Comment) (int, error) {
	m.seq++
	nc := *c
	nc.ID = m.seq
	nc.CreatedAt = time.Now()
	m.comments[nc.ID] = &nc
	return nc.ID, nil
}

func (m *memCommentRepo) GetAll(_ context.Context, f models.CommentFilter) ([]*models.Comment, error) {
	var out []*models.Comment
	for _, id := range sortedKeys(m.comments) {
		c := m.comments[id]
		if f.PostID != nil && c.PostID != *f.PostID {
			continue
		}
		if f.Approved != nil && c.IsApproved != *f.Approved {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memCommentRepo) GetByID(_ context.Context, id int) (*models.Comment, error) {
	c, ok := m.comments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *c
	return &cp, nil
}

func (m *memCommentRepo) Update(_ context.Context, c *models.Comment) error {
	if _, ok := m.comments[c.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *c
	m.comments[c.ID] = &cp
	return nil
}

func (m *memCommentRepo) Delete(_ context.Context, id int) error {
	delete(m.comments, id)
	return nil
}

func (m *memCommentRepo) Exists(_ context.Context, id int) (bool, error) {
	_, ok := m.comments[id]
	return ok, nil
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
