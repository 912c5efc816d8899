package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"bloghub/internal/models"
)

type PostRepo interface {
	Create(ctx context.Context, p *models.Post) (int, error)
	GetAll(ctx context.Context, f models.PostFilter) ([]*models.Post, error)
	GetByID(ctx context.Context, id int) (*models.Post, error)
	Update(ctx context.Context, p *models.Post) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
	GetTags(ctx context.Context, postID int) ([]models.Tag, error)
	ReplaceTags(ctx context.Context, postID int, tagIDs []int) error
}

type postRepo struct{ db *pgxpool.Pool }

func NewPostRepo(db *pgxpool.Pool) PostRepo { return &postRepo{db: db} }

const postSelect = `
	SELECT p.id, p.blog_id, p.author_id, p.category_id, p.title, p.slug,
	       p.content, p.excerpt, p.published_at, p.is_published, p.views,
	       p.external_id, p.created_at, p.updated_at,
	       b.name, a.name, c.name
	FROM posts p
	LEFT JOIN blogs b ON b.id = p.blog_id
	LEFT JOIN authors a ON a.id = p.author_id
	LEFT JOIN categories c ON c.id = p.category_id
`

func scanPost(row interface{ Scan(...any) error }) (*models.Post, error) {
	var p models.Post
	if err := row.Scan(
		&p.ID, &p.BlogID, &p.AuthorID, &p.CategoryID, &p.Title, &p.Slug,
		&p.Content, &p.Excerpt, &p.PublishedAt, &p.IsPublished, &p.Views,
		&p.ExternalID, &p.CreatedAt, &p.UpdatedAt,
		&p.BlogName, &p.AuthorName, &p.CategoryName,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postRepo) Create(ctx context.Context, p *models.Post) (int, error) {
	const q = `
		INSERT INTO posts (blog_id, author_id, category_id, title, slug, content, excerpt,
		                   published_at, is_published, views, external_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING id
	`
	var id int
	err := r.db.QueryRow(ctx, q,
		p.BlogID, p.AuthorID, p.CategoryID, p.Title, p.Slug, p.Content, p.Excerpt,
		p.PublishedAt, p.IsPublished, p.Views, p.ExternalID, p.CreatedAt, p.UpdatedAt,
	).Scan(&id)
	return id, err
}

func (r *postRepo) GetAll(ctx context.Context, f models.PostFilter) ([]*models.Post, error) {
	where := []string{}
	args := []interface{}{}
	i := 1

	if f.BlogID != nil {
		where = append(where, fmt.Sprintf("p.blog_id = $%d", i))
		args = append(args, *f.BlogID)
		i++
	}
	if f.AuthorID != nil {
		where = append(where, fmt.Sprintf("p.author_id = $%d", i))
		args = append(args, *f.AuthorID)
		i++
	}
	if f.CategoryID != nil {
		where = append(where, fmt.Sprintf("p.category_id = $%d", i))
		args = append(args, *f.CategoryID)
		i++
	}
	if f.Published != nil {
		where = append(where, fmt.Sprintf("p.is_published = $%d", i))
		args = append(args, *f.Published)
		i++
	}
	if f.Search != "" {
		// подстрочный поиск без учёта регистра по заголовку, тексту и выдержке
		where = append(where, fmt.Sprintf(
			"(p.title ILIKE $%d OR p.content ILIKE $%d OR p.excerpt ILIKE $%d)", i, i, i))
		args = append(args, "%"+f.Search+"%")
		i++
	}

	sql := postSelect
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *postRepo) GetByID(ctx context.Context, id int) (*models.Post, error) {
	p, err := scanPost(r.db.QueryRow(ctx, postSelect+` WHERE p.id=$1`, id))
	if err != nil {
		return nil, err
	}
	tags, err := r.GetTags(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Tags = tags
	return p, nil
}

func (r *postRepo) Update(ctx context.Context, p *models.Post) error {
	const q = `
		UPDATE posts
		SET blog_id=$1, author_id=$2, category_id=$3, title=$4, slug=$5,
		    content=$6, excerpt=$7, published_at=$8, is_published=$9,
		    external_id=$10, updated_at=now()
		WHERE id=$11
	`
	_, err := r.db.Exec(ctx, q,
		p.BlogID, p.AuthorID, p.CategoryID, p.Title, p.Slug,
		p.Content, p.Excerpt, p.PublishedAt, p.IsPublished,
		p.ExternalID, p.ID,
	)
	return err
}

func (r *postRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id=$1`, id)
	return err
}

func (r *postRepo) Exists(ctx context.Context, id int) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM posts WHERE id=$1)`, id).Scan(&ok)
	return ok, err
}

func (r *postRepo) GetTags(ctx context.Context, postID int) ([]models.Tag, error) {
	const q = `
		SELECT t.id, t.name
		FROM tags t
		JOIN post_tags pt ON pt.tag_id = t.id
		WHERE pt.post_id = $1
		ORDER BY t.name
	`
	rows, err := r.db.Query(ctx, q, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []models.Tag{}
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// ReplaceTags заменяет весь набор связок поста: сначала удаление, потом вставка.
// Не атомарно — промежуточный сбой оставит частичное состояние.
func (r *postRepo) ReplaceTags(ctx context.Context, postID int, tagIDs []int) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM post_tags WHERE post_id=$1`, postID); err != nil {
		return err
	}
	for _, tagID := range tagIDs {
		if _, err := r.db.Exec(ctx,
			`INSERT INTO post_tags (post_id, tag_id) VALUES ($1,$2) ON CONFLICT DO NOTHING`,
			postID, tagID,
		); err != nil {
			return err
		}
	}
	return nil
}
