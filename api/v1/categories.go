package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sevahub-simple/models"
)

// ListServiceCategories returns the fixed category list the registration
// wizard selects from.
func ListServiceCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.ServiceCategories)
}
