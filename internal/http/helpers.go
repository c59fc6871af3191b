// README: HTTP helper utilities for JSON errors and error mapping.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carpool/internal/modules/pooling"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: msg})
}

func writePoolingError(c *gin.Context, err error) {
	switch err {
	case pooling.ErrDuplicateGroup:
		writeError(c, http.StatusBadRequest, err.Error())
	case pooling.ErrGroupNotFound:
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
