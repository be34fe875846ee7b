package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/tripfolio/backend/internal/httputil"
)

// createdLocation sets the Location header for a newly created resource.
func createdLocation(c *gin.Context, id uint64) {
	c.Header("Location", fmt.Sprintf("%s/%d", httputil.RequestURL(c), id))
}
