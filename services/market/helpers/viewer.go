package helpers

import (
	model "auction-marketplace/internal/models"

	"github.com/gin-gonic/gin"
)

// ViewerKey is the gin context key the identity middleware stores the viewer under
const ViewerKey = "viewer"

// ViewerFrom returns the viewer set by the middleware, or a guest
func ViewerFrom(c *gin.Context) model.Viewer {
	if v, ok := c.Get(ViewerKey); ok {
		if viewer, ok := v.(model.Viewer); ok {
			return viewer
		}
	}
	return model.Viewer{}
}
