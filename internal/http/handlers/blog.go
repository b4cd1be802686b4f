package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/http/middleware"
	"hotelbooking/internal/services"
)

type BlogHandler struct {
	Blog services.BlogService
}

func (h BlogHandler) svc(c *gin.Context) services.BlogService {
	svc := h.Blog
	svc.RequestID = middleware.GetRequestID(c)
	return svc
}

// GET /api/blog?page=
func (h BlogHandler) List(c *gin.Context) {
	page, err := h.svc(c).List(QueryPage(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/blog/:id
func (h BlogHandler) Detail(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	detail, err := h.svc(c).Detail(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

type commentRequest struct {
	Text string `form:"text" json:"text"`
}

// POST /api/blog/:id/comments
func (h BlogHandler) AddComment(c *gin.Context) {
	userID, _, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}
	id, pok := PathID(c, "id")
	if !pok {
		return
	}

	var req commentRequest
	if !BindOrError(c, &req) {
		return
	}

	comment, err := h.svc(c).AddComment(userID, id, req.Text)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "comment created",
		"comment": comment,
	})
}

// POST /api/blog/:id/like
func (h BlogHandler) ToggleLike(c *gin.Context) {
	userID, _, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}
	id, pok := PathID(c, "id")
	if !pok {
		return
	}

	result, err := h.svc(c).ToggleLike(userID, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
