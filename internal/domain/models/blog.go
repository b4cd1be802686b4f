package models

// Blog post with its denormalized like count for list/detail payloads.
type Blog struct {
	ID          int64  `json:"id"`
	AuthorID    int64  `json:"author_id"`
	AuthorName  string `json:"author_name,omitempty"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Image       string `json:"image,omitempty"`
	IsPublished bool   `json:"is_published"`
	Likes       int    `json:"likes"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type Comment struct {
	ID         int64  `json:"id"`
	BlogID     int64  `json:"blog_id"`
	UserID     int64  `json:"user_id"`
	UserName   string `json:"user_name,omitempty"`
	Content    string `json:"content"`
	IsApproved bool   `json:"is_approved"`
	CreatedAt  string `json:"created_at,omitempty"`
}
