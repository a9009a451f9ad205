package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/BasmaLLaa/HCI-Project/internal/middleware"
	"github.com/BasmaLLaa/HCI-Project/internal/service"
	"github.com/BasmaLLaa/HCI-Project/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUserID pulls the authenticated caller's id out of the gin
// context, answering 401 itself when the auth middleware did not run.
func currentUserID(c *gin.Context) (uint, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Access token required")
		return 0, false
	}
	return id, true
}

// fail maps a service error to exactly one HTTP status. notFoundMsg is
// the entity-specific 404 message; everything unexpected collapses to
// a generic 500 so store internals never leak.
func fail(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		util.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable")
	case errors.Is(err, service.ErrNotFound):
		util.Error(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, service.ErrConflict):
		util.Error(c, http.StatusBadRequest, "Username or email already exists")
	case errors.Is(err, service.ErrAuth):
		util.Error(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrValidation):
		util.Error(c, http.StatusBadRequest, "No fields to update")
	default:
		util.Error(c, http.StatusInternalServerError, "Database error")
	}
}
