package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/scoutconnect-dev/scoutconnect/internal/middleware"
	"github.com/scoutconnect-dev/scoutconnect/internal/types"
)

func GetCurrentAccount(ctx *gin.Context) (middleware.AuthenticatedAccount, error) {
	value, exists := ctx.Get(types.ContextAccountKey)

	if !exists {
		return middleware.AuthenticatedAccount{}, fmt.Errorf("account not authenticated")
	}

	account, ok := value.(middleware.AuthenticatedAccount)

	if !ok {
		return middleware.AuthenticatedAccount{}, fmt.Errorf("invalid account type in context")
	}

	return account, nil
}

func GetCurrentAccountID(ctx *gin.Context) (uint, error) {
	account, err := GetCurrentAccount(ctx)

	if err != nil {
		return 0, err
	}

	return account.ID, nil
}
