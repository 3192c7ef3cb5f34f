package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseID parses a decimal entity ID.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)

	if err != nil {
		return 0, err
	}

	return uint(id), nil
}

// GetIDParam parses a numeric path parameter such as :player_id.
func GetIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	if raw == "" {
		return 0, errors.New("missing " + name)
	}

	id, err := ParseID(raw)

	if err != nil {
		return 0, errors.New("invalid " + name)
	}

	return id, nil
}

// GetPageParams parses optional skip/limit query parameters. Missing or
// malformed values fall back to the store defaults.
func GetPageParams(ctx *gin.Context) (int, int) {
	skip, err := strconv.Atoi(ctx.Query("skip"))

	if err != nil || skip < 0 {
		skip = 0
	}

	limit, err := strconv.Atoi(ctx.Query("limit"))

	if err != nil || limit < 0 {
		limit = 0
	}

	return skip, limit
}
