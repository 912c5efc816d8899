package models

import "time"

type Post struct {
	ID          int        `db:"id"           json:"id"`
	BlogID      int        `db:"blog_id"      json:"blogId"`
	AuthorID    *int       `db:"author_id"    json:"authorId,omitempty"`
	CategoryID  *int       `db:"category_id"  json:"categoryId,omitempty"`
	Title       string     `db:"title"        json:"title"`
	Slug        string     `db:"slug"         json:"slug"`
	Content     string     `db:"content"      json:"content"`
	Excerpt     string     `db:"excerpt"      json:"excerpt"`
	PublishedAt *time.Time `db:"published_at" json:"publishedAt,omitempty"`
	IsPublished bool       `db:"is_published" json:"isPublished"`
	Views       int        `db:"views"        json:"views"`
	ExternalID  *string    `db:"external_id"  json:"externalId,omitempty"`
	CreatedAt   time.Time  `db:"created_at"   json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at"   json:"updatedAt"`

	// Обогащение (LEFT JOIN), в таблице posts не хранится
	BlogName     *string `db:"-" json:"blogName,omitempty"`
	AuthorName   *string `db:"-" json:"authorName,omitempty"`
	CategoryName *string `db:"-" json:"categoryName,omitempty"`
	Tags         []Tag   `db:"-" json:"tags,omitempty"`
}

// swagger:model CreatePostRequest
type CreatePostRequest struct {
	BlogID      int     `json:"blogId"`
	AuthorID    *int    `json:"authorId,omitempty"`
	CategoryID  *int    `json:"categoryId,omitempty"`
	Title       string  `json:"title"    example:"Как писать middleware в Go"`
	Slug        string  `json:"slug"     example:"kak-pisat-middleware-v-go"`
	Content     string  `json:"content"`
	Excerpt     string  `json:"excerpt"`
	IsPublished bool    `json:"isPublished"`
	ExternalID  *string `json:"externalId,omitempty"`
	// Список ID тегов; при обновлении nil — не трогать, не-nil — полная замена
	Tags *[]int `json:"tags,omitempty"`
}

// PostFilter — параметры выборки списка постов.
type PostFilter struct {
	BlogID     *int
	AuthorID   *int
	CategoryID *int
	Published  *bool
	Search     string
	Limit      int
	Offset     int
}
