package models

// swagger:model SimplePostRequest
type SimplePostRequest struct {
	BlogURL   string   `json:"blogUrl"   example:"https://myblog.com"`
	PostTexts []string `json:"postTexts"`
}

// SimplePostResult — всё, что создал (или нашёл) конвейер simple-постинга.
type SimplePostResult struct {
	Blog         *Blog     `json:"blog"`
	Author       *Author   `json:"author"`
	Category     *Category `json:"category"`
	PostsCreated int       `json:"postsCreated"`
	Posts        []*Post   `json:"posts"`
}
