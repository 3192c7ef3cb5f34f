package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/scoutconnect-dev/scoutconnect/internal/auth"
	"github.com/scoutconnect-dev/scoutconnect/internal/store"
	"github.com/scoutconnect-dev/scoutconnect/internal/types"
	"github.com/scoutconnect-dev/scoutconnect/internal/utils"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	store  *store.Store
	tokens *auth.TokenManager
}

func NewAuthHandler(store *store.Store, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens}
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	account, err := h.store.RegisterAccount(req.Username, req.Email, req.Password, req.Role)

	if err != nil {
		respondError(ctx, err)
		return
	}

	token, err := h.tokens.Issue(account.ID)

	if err != nil {
		log.Printf("Failed to issue token: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, types.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	account, err := h.store.AuthenticateAccount(req.Username, req.Password)

	if err != nil {
		respondError(ctx, err)
		return
	}

	token, err := h.tokens.Issue(account.ID)

	if err != nil {
		log.Printf("Failed to issue token: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	account, err := utils.GetCurrentAccount(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"account": types.AccountResponse{
			ID:       account.ID,
			Username: account.Username,
			Email:    account.Email,
			Role:     account.Role,
		},
	})
}
