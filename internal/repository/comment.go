package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"bloghub/internal/models"
)

type CommentRepo interface {
	Create(ctx context.Context, c *models.Comment) (int, error)
	GetAll(ctx context.Context, f models.CommentFilter) ([]*models.Comment, error)
	GetByID(ctx context.Context, id int) (*models.Comment, error)
	Update(ctx context.Context, c *models.Comment) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
}

type commentRepo struct{ db *pgxpool.Pool }

func NewCommentRepo(db *pgxpool.Pool) CommentRepo { return &commentRepo{db: db} }

const commentSelect = `
	SELECT c.id, c.post_id, c.author_name, c.author_email, c.content,
	       c.created_at, c.is_approved, c.external_id,
	       p.title, p.slug
	FROM comments c
	LEFT JOIN posts p ON p.id = c.post_id
`

func scanComment(row interface{ Scan(...any) error }) (*models.Comment, error) {
	var c models.Comment
	if err := row.Scan(
		&c.ID, &c.PostID, &c.AuthorName, &c.AuthorEmail, &c.Content,
		&c.CreatedAt, &c.IsApproved, &c.ExternalID,
		&c.PostTitle, &c.PostSlug,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *commentRepo) Create(ctx context.Context, c *models.Comment) (int, error) {
	const q = `
		INSERT INTO comments (post_id, author_name, author_email, content, is_approved, external_id)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`
	var id int
	err := r.db.QueryRow(ctx, q,
		c.PostID, c.AuthorName, c.AuthorEmail, c.Content, c.IsApproved, c.ExternalID,
	).Scan(&id)
	return id, err
}

func (r *commentRepo) GetAll(ctx context.Context, f models.CommentFilter) ([]*models.Comment, error) {
	where := []string{}
	args := []interface{}{}
	i := 1

	if f.PostID != nil {
		where = append(where, fmt.Sprintf("c.post_id = $%d", i))
		args = append(args, *f.PostID)
		i++
	}
	if f.Approved != nil {
		where = append(where, fmt.Sprintf("c.is_approved = $%d", i))
		args = append(args, *f.Approved)
		i++
	}

	sql := commentSelect
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += fmt.Sprintf(" ORDER BY c.created_at DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *commentRepo) GetByID(ctx context.Context, id int) (*models.Comment, error) {
	return scanComment(r.db.QueryRow(ctx, commentSelect+` WHERE c.id=$1`, id))
}

func (r *commentRepo) Update(ctx context.Context, c *models.Comment) error {
	const q = `
		UPDATE comments
		SET post_id=$1, author_name=$2, author_email=$3, content=$4, is_approved=$5, external_id=$6
		WHERE id=$7
	`
	_, err := r.db.Exec(ctx, q,
		c.PostID, c.AuthorName, c.AuthorEmail, c.Content, c.IsApproved, c.ExternalID, c.ID,
	)
	return err
}

func (r *commentRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id=$1`, id)
	return err
}

func (r *commentRepo) Exists(ctx context.Context, id int) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM comments WHERE id=$1)`, id).Scan(&ok)
	return ok, err
}
