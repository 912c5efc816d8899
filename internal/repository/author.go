package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"bloghub/internal/models"
)

type AuthorRepo interface {
	Create(ctx context.Context, a *models.Author) (int, error)
	GetAll(ctx context.Context) ([]*models.Author, error)
	GetByID(ctx context.Context, id int) (*models.Author, error)
	GetFirstByBlog(ctx context.Context, blogID int) (*models.Author, error)
	Update(ctx context.Context, a *models.Author) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
}

type authorRepo struct{ db *pgxpool.Pool }

func NewAuthorRepo(db *pgxpool.Pool) AuthorRepo { return &authorRepo{db: db} }

const authorSelect = `
	SELECT a.id, a.blog_id, a.name, a.email, a.profile_url, a.bio, a.created_at, b.name
	FROM authors a
	LEFT JOIN blogs b ON b.id = a.blog_id
`

func scanAuthor(row interface{ Scan(...any) error }) (*models.Author, error) {
	var a models.Author
	if err := row.Scan(
		&a.ID, &a.BlogID, &a.Name, &a.Email, &a.ProfileURL, &a.Bio, &a.CreatedAt, &a.BlogName,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *authorRepo) Create(ctx context.Context, a *models.Author) (int, error) {
	var id int
	err := r.db.QueryRow(ctx,
		`INSERT INTO authors (blog_id, name, email, profile_url, bio) VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		a.BlogID, a.Name, a.Email, a.ProfileURL, a.Bio,
	).Scan(&id)
	return id, err
}

func (r *authorRepo) GetAll(ctx context.Context) ([]*models.Author, error) {
	rows, err := r.db.Query(ctx, authorSelect+` ORDER BY a.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *authorRepo) GetByID(ctx context.Context, id int) (*models.Author, error) {
	return scanAuthor(r.db.QueryRow(ctx, authorSelect+` WHERE a.id=$1`, id))
}

// GetFirstByBlog — первый попавшийся автор блога (порядок — как отдаёт БД).
func (r *authorRepo) GetFirstByBlog(ctx context.Context, blogID int) (*models.Author, error) {
	return scanAuthor(r.db.QueryRow(ctx, authorSelect+` WHERE a.blog_id=$1 LIMIT 1`, blogID))
}

func (r *authorRepo) Update(ctx context.Context, a *models.Author) error {
	_, err := r.db.Exec(ctx,
		`UPDATE authors SET blog_id=$1, name=$2, email=$3, profile_url=$4, bio=$5 WHERE id=$6`,
		a.BlogID, a.Name, a.Email, a.ProfileURL, a.Bio, a.ID,
	)
	return err
}

func (r *authorRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM authors WHERE id=$1`, id)
	return err
}

func (r *authorRepo) Exists(ctx context.Context, id int) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id=$1)`, id).Scan(&ok)
	return ok, err
}
