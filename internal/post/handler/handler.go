package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blogd/blogd/internal/post"
	"github.com/blogd/blogd/internal/post/repository"
	"github.com/blogd/blogd/internal/post/service"
	"github.com/blogd/blogd/pkg/metrics"
)

type createRequest struct {
	Title   string      `json:"title" binding:"required"`
	Content string      `json:"content" binding:"required"`
	Author  post.Author `json:"author" binding:"required"`
}

// updateRequest uses pointer fields so an omitted field preserves the
// stored value. A body id, when present, must match the path target.
type updateRequest struct {
	ID      *string      `json:"id"`
	Title   *string      `json:"title"`
	Content *string      `json:"content"`
	Author  *post.Author `json:"author"`
}

// RegisterPostRoutes wires the blog-post endpoints onto the engine.
func RegisterPostRoutes(r *gin.Engine, svc service.Service) {
	r.GET("/posts", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		out := make([]post.Response, 0, len(list))
		for _, p := range list {
			out = append(out, p.Response())
		}
		c.JSON(http.StatusOK, out)
	})

	r.POST("/posts", func(c *gin.Context) {
		var req createRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p := &post.Post{Title: req.Title, Content: req.Content, Author: req.Author}
		created, err := svc.Create(c.Request.Context(), p)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		metrics.PostsCreated.Inc()
		c.JSON(http.StatusCreated, created.Response())
	})

	r.PUT("/posts/:id", func(c *gin.Context) {
		id := c.Param("id")
		var req updateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.ID != nil && *req.ID != id {
			c.JSON(http.StatusBadRequest, gin.H{"error": "body id does not match path id"})
			return
		}
		upd := repository.Update{Title: req.Title, Content: req.Content, Author: req.Author}
		p, err := svc.Update(c.Request.Context(), id, upd)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		metrics.PostsUpdated.Inc()
		c.JSON(http.StatusOK, p.Response())
	})
}
