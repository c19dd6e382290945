package api

import (
	"net/http"

	"pitchside/loader"
	"pitchside/types"

	"github.com/gin-gonic/gin"
)

// RegisterArticleRoutes registers article-related routes.
func RegisterArticleRoutes(r *gin.Engine, l *loader.Loader) {
	r.GET("/api/articles", handleGetArticles(l))
}

// handleGetArticles runs one load per request. Failures surface as an empty list, never an error status.
func handleGetArticles(l *loader.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		res := l.Load(ctx, l.Begin(ctx))
		c.Header("X-Request-ID", res.RequestID)
		c.JSON(http.StatusOK, types.NewArticleList(res.Articles))
	}
}
