package models

type Tag struct {
	ID   int    `db:"id"   json:"id"`
	Name string `db:"name" json:"name"`

	// Количество постов с этим тегом (обогащение списка)
	PostCount int `db:"-" json:"postCount"`
}
