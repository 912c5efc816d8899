package models

import "time"

type Blog struct {
	ID          int       `db:"id"          json:"id"`
	Name        string    `db:"name"        json:"name"`
	Slug        string    `db:"slug"        json:"slug"`
	Description *string   `db:"description" json:"description,omitempty"`
	URL         *string   `db:"url"         json:"url,omitempty"`
	CreatedAt   time.Time `db:"created_at"  json:"createdAt"`
}
