package api

import (
	"pitchside/loader"
	"pitchside/preferences"

	"github.com/gin-gonic/gin"
)

// Dependencies are the collaborators the HTTP handlers need
type Dependencies struct {
	Loader      *loader.Loader
	Preferences preferences.Store
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	RegisterHealthRoutes(r)
	RegisterArticleRoutes(r, deps.Loader)
	RegisterPreferenceRoutes(r, deps.Preferences)
	return r
}
