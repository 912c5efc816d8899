package models

import "time"

type Comment struct {
	ID          int       `db:"id"           json:"id"`
	PostID      int       `db:"post_id"      json:"postId"`
	AuthorName  *string   `db:"author_name"  json:"authorName,omitempty"`
	AuthorEmail *string   `db:"author_email" json:"authorEmail,omitempty"`
	Content     string    `db:"content"      json:"content"`
	CreatedAt   time.Time `db:"created_at"   json:"createdAt"`
	IsApproved  bool      `db:"is_approved"  json:"isApproved"`
	ExternalID  *string   `db:"external_id"  json:"externalId,omitempty"`

	// Обогащение (LEFT JOIN на пост)
	PostTitle *string `db:"-" json:"postTitle,omitempty"`
	PostSlug  *string `db:"-" json:"postSlug,omitempty"`
}

// CommentFilter — параметры выборки списка комментариев.
type CommentFilter struct {
	PostID   *int
	Approved *bool
	Limit    int
	Offset   int
}
