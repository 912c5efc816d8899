package models

type Category struct {
	ID     int     `db:"id"      json:"id"`
	BlogID int     `db:"blog_id" json:"blogId"`
	Name   string  `db:"name"    json:"name"`
	Slug   *string `db:"slug"    json:"slug,omitempty"`

	BlogName *string `db:"-" json:"blogName,omitempty"`
}
