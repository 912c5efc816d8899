package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"bloghub/internal/models"
)

type CategoryRepo interface {
	Create(ctx context.Context, c *models.Category) (int, error)
	GetAll(ctx context.Context) ([]*models.Category, error)
	GetByID(ctx context.Context, id int) (*models.Category, error)
	GetFirstByBlog(ctx context.Context, blogID int) (*models.Category, error)
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
}

type categoryRepo struct{ db *pgxpool.Pool }

func NewCategoryRepo(db *pgxpool.Pool) CategoryRepo { return &categoryRepo{db: db} }

const categorySelect = `
	SELECT c.id, c.blog_id, c.name, c.slug, b.name
	FROM categories c
	LEFT JOIN blogs b ON b.id = c.blog_id
`

func scanCategory(row interface{ Scan(...any) error }) (*models.Category, error) {
	var c models.Category
	if err := row.Scan(&c.ID, &c.BlogID, &c.Name, &c.Slug, &c.BlogName); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) Create(ctx context.Context, c *models.Category) (int, error) {
	var id int
	err := r.db.QueryRow(ctx,
		`INSERT INTO categories (blog_id, name, slug) VALUES ($1,$2,$3) RETURNING id`,
		c.BlogID, c.Name, c.Slug,
	).Scan(&id)
	return id, err
}

func (r *categoryRepo) GetAll(ctx context.Context) ([]*models.Category, error) {
	rows, err := r.db.Query(ctx, categorySelect+` ORDER BY c.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *categoryRepo) GetByID(ctx context.Context, id int) (*models.Category, error) {
	return scanCategory(r.db.QueryRow(ctx, categorySelect+` WHERE c.id=$1`, id))
}

func (r *categoryRepo) GetFirstByBlog(ctx context.Context, blogID int) (*models.Category, error) {
	return scanCategory(r.db.QueryRow(ctx, categorySelect+` WHERE c.blog_id=$1 LIMIT 1`, blogID))
}

func (r *categoryRepo) Update(ctx context.Context, c *models.Category) error {
	_, err := r.db.Exec(ctx,
		`UPDATE categories SET blog_id=$1, name=$2, slug=$3 WHERE id=$4`,
		c.BlogID, c.Name, c.Slug, c.ID,
	)
	return err
}

func (r *categoryRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	return err
}

func (r *categoryRepo) Exists(ctx context.Context, id int) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM categories WHERE id=$1)`, id).Scan(&ok)
	return ok, err
}
