package models

import "time"

type Author struct {
	ID         int       `db:"id"          json:"id"`
	BlogID     int       `db:"blog_id"     json:"blogId"`
	Name       string    `db:"name"        json:"name"`
	Email      *string   `db:"email"       json:"email,omitempty"`
	ProfileURL *string   `db:"profile_url" json:"profileUrl,omitempty"`
	Bio        *string   `db:"bio"         json:"bio,omitempty"`
	CreatedAt  time.Time `db:"created_at"  json:"createdAt"`

	// Обогащение (LEFT JOIN на блог), в БД не хранится
	BlogName *string `db:"-" json:"blogName,omitempty"`
}
