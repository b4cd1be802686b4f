package services

import (
	"fmt"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/domain/models"
	"hotelbooking/internal/repositories"
	"hotelbooking/internal/utils"
)

type BlogService struct {
	BlogRepo  repositories.BlogRepository
	PageSize  int
	RequestID string
}

func (s BlogService) pageSize() int {
	if s.PageSize > 0 {
		return s.PageSize
	}
	return 5
}

type BlogPage struct {
	Posts      []models.Blog     `json:"posts"`
	Pagination domain.Pagination `json:"pagination"`
}

func (s BlogService) List(page int) (BlogPage, error) {
	if page < 1 {
		page = 1
	}
	posts, total, err := s.BlogRepo.ListPublished(page, s.pageSize())
	if err != nil {
		return BlogPage{}, domain.InternalError{Err: err}
	}
	return BlogPage{
		Posts: posts,
		Pagination: domain.Pagination{
			Page:     page,
			PageSize: s.pageSize(),
			Total:    total,
		},
	}, nil
}

type BlogDetail struct {
	Post     models.Blog      `json:"post"`
	Comments []models.Comment `json:"comments"`
}

func (s BlogService) Detail(id int64) (BlogDetail, error) {
	post, err := s.BlogRepo.GetByID(id)
	if err != nil {
		return BlogDetail{}, err
	}
	comments, err := s.BlogRepo.ListComments(post.ID)
	if err != nil {
		return BlogDetail{}, domain.InternalError{Err: err}
	}
	return BlogDetail{Post: post, Comments: comments}, nil
}

// AddComment stores a non-empty comment; comments are auto-approved.
func (s BlogService) AddComment(userID, blogID int64, text string) (models.Comment, error) {
	text = utils.TrimOrEmpty(text)
	if text == "" {
		return models.Comment{}, domain.ValidationError{Field: "text", Msg: "required"}
	}

	post, err := s.BlogRepo.GetByID(blogID)
	if err != nil {
		return models.Comment{}, err
	}

	id, err := s.BlogRepo.CreateComment(post.ID, userID, text)
	if err != nil {
		return models.Comment{}, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "blog", "comment", fmt.Sprintf("blog_id=%d comment_id=%d", blogID, id))
	return models.Comment{
		ID:         id,
		BlogID:     post.ID,
		UserID:     userID,
		Content:    text,
		IsApproved: true,
	}, nil
}

// LikeResult reports the post-toggle state of the liked-by edge.
type LikeResult struct {
	BlogID int64 `json:"blog_id"`
	Liked  bool  `json:"liked"`
	Likes  int   `json:"likes"`
}

// ToggleLike flips the user's membership in the post's liked-by set:
// a member is removed, a non-member is added.
func (s BlogService) ToggleLike(userID, blogID int64) (LikeResult, error) {
	post, err := s.BlogRepo.GetByID(blogID)
	if err != nil {
		return LikeResult{}, err
	}

	liked, count, err := s.BlogRepo.ToggleLike(post.ID, userID)
	if err != nil {
		return LikeResult{}, domain.InternalError{Err: err}
	}
	return LikeResult{BlogID: post.ID, Liked: liked, Likes: count}, nil
}
