package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"bloghub/internal/models"
)

type TagRepo interface {
	Create(ctx context.Context, t *models.Tag) (int, error)
	GetAll(ctx context.Context) ([]*models.Tag, error)
	GetByID(ctx context.Context, id int) (*models.Tag, error)
	Update(ctx context.Context, t *models.Tag) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
	NameExists(ctx context.Context, name string, exceptID int) (bool, error)
}

type tagRepo struct{ db *pgxpool.Pool }

func NewTagRepo(db *pgxpool.Pool) TagRepo { return &tagRepo{db: db} }

const tagSelect = `
	SELECT t.id, t.name, COALESCE(pc.cnt, 0)
	FROM tags t
	LEFT JOIN (SELECT tag_id, COUNT(*) cnt FROM post_tags GROUP BY tag_id) pc
	  ON pc.tag_id = t.id
`

func (r *tagRepo) Create(ctx context.Context, t *models.Tag) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `INSERT INTO tags (name) VALUES ($1) RETURNING id`, t.Name).Scan(&id)
	return id, err
}

func (r *tagRepo) GetAll(ctx context.Context) ([]*models.Tag, error) {
	rows, err := r.db.Query(ctx, tagSelect+` ORDER BY t.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.PostCount); err != nil {
			return nil, err
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

func (r *tagRepo) GetByID(ctx context.Context, id int) (*models.Tag, error) {
	var t models.Tag
	if err := r.db.QueryRow(ctx, tagSelect+` WHERE t.id=$1`, id).Scan(
		&t.ID, &t.Name, &t.PostCount,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tagRepo) Update(ctx context.Context, t *models.Tag) error {
	_, err := r.db.Exec(ctx, `UPDATE tags SET name=$1 WHERE id=$2`, t.Name, t.ID)
	return err
}

func (r *tagRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM tags WHERE id=$1`, id)
	return err
}

func (r *tagRepo) Exists(ctx context.Context, id int) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM tags WHERE id=$1)`, id).Scan(&ok)
	return ok, err
}

// NameExists проверяет занятость имени (с учётом регистра); exceptID исключает
// саму запись при обновлении (0 — не исключать ничего).
func (r *tagRepo) NameExists(ctx context.Context, name string, exceptID int) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM tags WHERE name=$1 AND id<>$2)`, name, exceptID,
	).Scan(&ok)
	return ok, err
}
