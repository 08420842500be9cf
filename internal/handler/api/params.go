package api

import (
	"strconv"

	"cosme-store/internal/domain/user"
	"cosme-store/internal/handler/httperr"
	"cosme-store/internal/handler/middleware"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// caller returns the authenticated user, aborting with 401 when the route was
// mounted without RequireAuth.
func caller(c *gin.Context) (uuid.UUID, user.Role, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortUnauthenticated(c)
		return uuid.Nil, "", false
	}
	role, _ := middleware.GetUserRole(c)
	return userID, role, true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.Abort(c, errs.Mark(errs.Wrapf(err, "invalid %s", name), errs.ErrValidation))
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads ?limit= and ?cursor=. An unparsable limit falls back to
// the default page size.
func pageParams(c *gin.Context) (*queries.Cursor, int) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	var cursor *queries.Cursor
	if after := c.Query("cursor"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, queries.ValidateLimit(limit)
}

func optionalIntQuery(c *gin.Context, key string) (*int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		httperr.Abort(c, errs.Mark(errs.Wrapf(err, "invalid %s", key), errs.ErrValidation))
		return nil, false
	}
	return &v, true
}
