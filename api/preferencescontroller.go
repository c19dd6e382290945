package api

import (
	"errors"
	"log"
	"net/http"

	"pitchside/preferences"

	"github.com/gin-gonic/gin"
)

// RegisterPreferenceRoutes registers endpoints for reading and changing query preferences.
func RegisterPreferenceRoutes(r *gin.Engine, store preferences.Store) {
	g := r.Group("/api/preferences")
	g.GET("", handleGetPreferences(store))
	g.PUT("", handlePutPreferences(store))
}

func handleGetPreferences(store preferences.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, preferences.Resolve(c.Request.Context(), store))
	}
}

// handlePutPreferences accepts either field; omitted fields keep their stored value
func handlePutPreferences(store preferences.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req preferences.Values
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		if err := preferences.Save(ctx, store, req); err != nil {
			if errors.Is(err, preferences.ErrInvalidPreference) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			log.Printf("saving preferences: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save preferences"})
			return
		}

		c.JSON(http.StatusOK, preferences.Resolve(ctx, store))
	}
}
