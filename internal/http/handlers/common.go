package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/http/response"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/pkg/dbctx"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/apierr"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/ctxutil"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// callerID writes a 401 and returns false when no authenticated user is attached.
func callerID(c *gin.Context) (uuid.UUID, bool) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondAPIError(c, apierr.Unauthorized("not authenticated"))
		return uuid.Nil, false
	}
	return rd.UserID, true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(name)))
	if err != nil {
		response.RespondAPIError(c, apierr.Validation(name))
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON rejects bodies that are not JSON or whose values have the wrong type.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return false
	}
	return true
}

func listLimit(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("limit"))
	if err != nil || n <= 0 {
		return defaultListLimit
	}
	if n > maxListLimit {
		return maxListLimit
	}
	return n
}

func requestDB(c *gin.Context) dbctx.Context {
	return dbctx.New(c.Request.Context())
}
