package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"bloghub/internal/models"
)

type BlogRepo interface {
	Create(ctx context.Context, b *models.Blog) (int, error)
	GetAll(ctx context.Context) ([]*models.Blog, error)
	GetByID(ctx context.Context, id int) (*models.Blog, error)
	GetByURL(ctx context.Context, url string) (*models.Blog, error)
	Update(ctx context.Context, b *models.Blog) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
}

type blogRepo struct{ db *pgxpool.Pool }

func NewBlogRepo(db *pgxpool.Pool) BlogRepo { return &blogRepo{db: db} }

func (r *blogRepo) Create(ctx context.Context, b *models.Blog) (int, error) {
	var id int
	err := r.db.QueryRow(ctx,
		`INSERT INTO blogs (name, slug, description, url) VALUES ($1,$2,$3,$4) RETURNING id`,
		b.Name, b.Slug, b.Description, b.URL,
	).Scan(&id)
	return id, err
}

func (r *blogRepo) GetAll(ctx context.Context) ([]*models.Blog, error) {
	const q = `
		SELECT id, name, slug, description, url, created_at
		FROM blogs
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Blog
	for rows.Next() {
		var b models.Blog
		if err := rows.Scan(&b.ID, &b.Name, &b.Slug, &b.Description, &b.URL, &b.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

func (r *blogRepo) GetByID(ctx context.Context, id int) (*models.Blog, error) {
	const q = `SELECT id, name, slug, description, url, created_at FROM blogs WHERE id=$1`
	var b models.Blog
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&b.ID, &b.Name, &b.Slug, &b.Description, &b.URL, &b.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

// GetByURL ищет блог по точному совпадению url (без нормализации).
func (r *blogRepo) GetByURL(ctx context.Context, url string) (*models.Blog, error) {
	const q = `SELECT id, name, slug, description, url, created_at FROM blogs WHERE url=$1 LIMIT 1`
	var b models.Blog
	if err := r.db.QueryRow(ctx, q, url).Scan(
		&b.ID, &b.Name, &b.Slug, &b.Description, &b.URL, &b.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *blogRepo) Update(ctx context.Context, b *models.Blog) error {
	_, err := r.db.Exec(ctx,
		`UPDATE blogs SET name=$1, slug=$2, description=$3, url=$4 WHERE id=$5`,
		b.Name, b.Slug, b.Description, b.URL, b.ID,
	)
	return err
}

func (r *blogRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM blogs WHERE id=$1`, id)
	return err
}

func (r *blogRepo) Exists(ctx context.Context, id int) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM blogs WHERE id=$1)`, id).Scan(&ok)
	return ok, err
}
