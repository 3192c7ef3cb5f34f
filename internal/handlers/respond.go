package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scoutconnect-dev/scoutconnect/internal/apperrors"
)

// respondError translates the error taxonomy into a stable outcome code.
// Anything outside the taxonomy is logged and surfaced as a 500.
func respondError(ctx *gin.Context, err error) {
	var (
		validation     *apperrors.ValidationError
		conflict       *apperrors.ConflictError
		authentication *apperrors.AuthenticationError
		authorization  *apperrors.AuthorizationError
		notFound       *apperrors.NotFoundError
	)

	switch {
	case errors.As(err, &validation):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validation.Msg})
	case errors.As(err, &conflict):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": conflict.Msg})
	case errors.As(err, &authentication):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": authentication.Msg})
	case errors.As(err, &authorization):
		ctx.JSON(http.StatusForbidden, gin.H{"error": authorization.Msg})
	case errors.As(err, &notFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": notFound.Msg})
	default:
		log.Printf("Unexpected error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
