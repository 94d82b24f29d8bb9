package resp

import (
	"net/http"

	"github.com/RubensDuarte2025/Julius-rmd/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "kind": apperr.KindInvalidArgument, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// Error maps a service failure to its HTTP status by kind. Anything without
// a kind is a storage/internal error.
func Error(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	var status int
	switch kind {
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindInvalidArgument:
		status = http.StatusBadRequest
	case apperr.KindInvalidState, apperr.KindConflict:
		status = http.StatusConflict
	case apperr.KindUnavailable:
		status = http.StatusUnprocessableEntity
	default:
		ServerError(c, err)
		return
	}
	c.JSON(status, gin.H{"ok": false, "kind": kind, "error": err.Error()})
}
