package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/scoutconnect-dev/scoutconnect/internal/auth"
	"github.com/scoutconnect-dev/scoutconnect/internal/authz"
	"github.com/scoutconnect-dev/scoutconnect/internal/store"
	"github.com/scoutconnect-dev/scoutconnect/internal/types"
)

type AuthenticatedAccount struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Authenticate verifies the bearer token, loads the account it was issued for
// and stashes it in the request context. Any failure is a plain 401.
func Authenticate(tokens *auth.TokenManager, accounts *store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		accountID, err := tokens.Verify(parts[1])

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		account, err := accounts.GetAccount(accountID)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		ctx.Set(types.ContextAccountKey, AuthenticatedAccount{
			ID:       account.ID,
			Username: account.Username,
			Email:    account.Email,
			Role:     account.Role,
		})
		ctx.Next()
	}
}

// Authorize gates a route on the permission table. It runs after Authenticate
// and rejects with 403 before the handler is reached.
func Authorize(op authz.Operation) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(types.ContextAccountKey)

		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
			return
		}

		account, ok := value.(AuthenticatedAccount)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
			return
		}

		if !authz.Allowed(account.Role, op) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this operation"})
			return
		}

		ctx.Next()
	}
}
