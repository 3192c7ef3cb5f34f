package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/scoutconnect-dev/scoutconnect/internal/store"
	"github.com/scoutconnect-dev/scoutconnect/internal/types"
	"github.com/scoutconnect-dev/scoutconnect/internal/utils"
)

type UpdateAccountRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Role     *string `json:"role"`
}

// AccountHandler covers admin-only account management.
type AccountHandler struct {
	store *store.Store
}

func NewAccountHandler(store *store.Store) *AccountHandler {
	return &AccountHandler{store: store}
}

func (h *AccountHandler) Update(ctx *gin.Context) {
	accountID, err := utils.GetIDParam(ctx, "account_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req UpdateAccountRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Email != nil {
		trimmed := strings.TrimSpace(*req.Email)
		req.Email = &trimmed
	}

	account, err := h.store.UpdateAccount(accountID, store.AccountUpdate{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.AccountResponse{
		ID:       account.ID,
		Username: account.Username,
		Email:    account.Email,
		Role:     account.Role,
	})
}

func (h *AccountHandler) Delete(ctx *gin.Context) {
	accountID, err := utils.GetIDParam(ctx, "account_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.DeleteAccount(accountID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
