package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scoutconnect-dev/scoutconnect/internal/models"
	"github.com/scoutconnect-dev/scoutconnect/internal/store"
	"github.com/scoutconnect-dev/scoutconnect/internal/utils"
)

type CreateWatchlistEntryRequest struct {
	PlayerID uint   `json:"player_id" binding:"required"`
	Notes    string `json:"notes"`
}

type WatchlistEntryResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	PlayerID  uint      `json:"player_id"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

func watchlistEntryResponse(entry *models.WatchlistEntry) WatchlistEntryResponse {
	return WatchlistEntryResponse{
		ID:        entry.ID,
		UserID:    entry.UserID,
		PlayerID:  entry.PlayerID,
		Notes:     entry.Notes,
		CreatedAt: entry.CreatedAt,
	}
}

// WatchlistHandler scopes entries to their owner; admins see everything.
type WatchlistHandler struct {
	store *store.Store
}

func NewWatchlistHandler(store *store.Store) *WatchlistHandler {
	return &WatchlistHandler{store: store}
}

func (h *WatchlistHandler) Create(ctx *gin.Context) {
	var req CreateWatchlistEntryRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	account, err := utils.GetCurrentAccount(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	entry, err := h.store.CreateWatchlistEntry(account.ID, req.PlayerID, req.Notes)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, watchlistEntryResponse(entry))
}

func (h *WatchlistHandler) List(ctx *gin.Context) {
	account, err := utils.GetCurrentAccount(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	skip, limit := utils.GetPageParams(ctx)

	ownerID := &account.ID

	if account.Role == models.RoleAdmin {
		ownerID = nil

		if raw := ctx.Query("user_id"); raw != "" {
			id, err := utils.ParseID(raw)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
				return
			}
			ownerID = &id
		}
	}

	entries, err := h.store.ListWatchlistEntries(skip, limit, ownerID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]WatchlistEntryResponse, 0, len(entries))

	for i := range entries {
		response = append(response, watchlistEntryResponse(&entries[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *WatchlistHandler) Get(ctx *gin.Context) {
	entryID, err := utils.GetIDParam(ctx, "entry_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := utils.GetCurrentAccount(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	entry, err := h.store.GetWatchlistEntry(entryID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	if entry.UserID != account.ID && account.Role != models.RoleAdmin {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this watchlist entry"})
		return
	}

	ctx.JSON(http.StatusOK, watchlistEntryResponse(entry))
}

func (h *WatchlistHandler) Delete(ctx *gin.Context) {
	entryID, err := utils.GetIDParam(ctx, "entry_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := utils.GetCurrentAccount(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	entry, err := h.store.GetWatchlistEntry(entryID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	if entry.UserID != account.ID && account.Role != models.RoleAdmin {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this watchlist entry"})
		return
	}

	if err := h.store.DeleteWatchlistEntry(entryID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
