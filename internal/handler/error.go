package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/snnyvrz/book-manager/internal/service"
	"github.com/snnyvrz/book-manager/internal/validation"
)

func writeError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, validation.NewErrorResponse(status, message))
}

// writeServiceError maps a service error to a response. Not-found errors
// carry their own message; anything else is logged and answered with the
// generic fallback.
func writeServiceError(c *gin.Context, err error, fallback string) {
	var nf *service.NotFoundError
	if errors.As(err, &nf) {
		writeError(c, http.StatusNotFound, nf.Error())
		return
	}

	event := zerolog.Ctx(c.Request.Context()).Error().Err(err)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		event = event.Str("sqlstate", pgErr.Code)
		if pgErr.ConstraintName != "" {
			event = event.Str("constraint", pgErr.ConstraintName)
		}
	}

	event.Msg(fallback)

	_ = c.Error(err)
	writeError(c, http.StatusInternalServerError, fallback)
}

func parseBookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid book id")
		return 0, false
	}
	return id, true
}
