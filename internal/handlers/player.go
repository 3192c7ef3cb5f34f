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

const dateLayout = "2006-01-02"

type CreatePlayerRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	DateOfBirth string `json:"date_of_birth"`
	Sport       string `json:"sport" binding:"required"`
	Position    string `json:"position"`
	HeightCm    *int   `json:"height_cm"`
	WeightKg    *int   `json:"weight_kg"`
}

type UpdatePlayerRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	DateOfBirth *string `json:"date_of_birth"`
	Sport       *string `json:"sport"`
	Position    *string `json:"position"`
	HeightCm    *int    `json:"height_cm"`
	WeightKg    *int    `json:"weight_kg"`
}

type PlayerResponse struct {
	ID          uint      `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth *string   `json:"date_of_birth"`
	Sport       string    `json:"sport"`
	Position    string    `json:"position"`
	HeightCm    *int      `json:"height_cm"`
	WeightKg    *int      `json:"weight_kg"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func playerResponse(player *models.Player) PlayerResponse {
	var dob *string

	if player.DateOfBirth != nil {
		formatted := player.DateOfBirth.Format(dateLayout)
		dob = &formatted
	}

	return PlayerResponse{
		ID:          player.ID,
		FirstName:   player.FirstName,
		LastName:    player.LastName,
		DateOfBirth: dob,
		Sport:       player.Sport,
		Position:    player.Position,
		HeightCm:    player.HeightCm,
		WeightKg:    player.WeightKg,
		CreatedAt:   player.CreatedAt,
		UpdatedAt:   player.UpdatedAt,
	}
}

func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(dateLayout, raw)

	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

type PlayerHandler struct {
	store *store.Store
}

func NewPlayerHandler(store *store.Store) *PlayerHandler {
	return &PlayerHandler{store: store}
}

func (h *PlayerHandler) Create(ctx *gin.Context) {
	var req CreatePlayerRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	dob, err := parseDate(req.DateOfBirth)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "date_of_birth must be YYYY-MM-DD"})
		return
	}

	player, err := h.store.CreatePlayer(store.NewPlayer{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: dob,
		Sport:       req.Sport,
		Position:    req.Position,
		HeightCm:    req.HeightCm,
		WeightKg:    req.WeightKg,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, playerResponse(player))
}

func (h *PlayerHandler) List(ctx *gin.Context) {
	skip, limit := utils.GetPageParams(ctx)

	players, err := h.store.ListPlayers(skip, limit, ctx.Query("sport"))

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]PlayerResponse, 0, len(players))

	for i := range players {
		response = append(response, playerResponse(&players[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *PlayerHandler) Get(ctx *gin.Context) {
	playerID, err := utils.GetIDParam(ctx, "player_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.store.GetPlayer(playerID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, playerResponse(player))
}

func (h *PlayerHandler) Update(ctx *gin.Context) {
	playerID, err := utils.GetIDParam(ctx, "player_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req UpdatePlayerRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	update := store.PlayerUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Sport:     req.Sport,
		Position:  req.Position,
		HeightCm:  req.HeightCm,
		WeightKg:  req.WeightKg,
	}

	if req.DateOfBirth != nil {
		dob, err := parseDate(*req.DateOfBirth)
		if err != nil || dob == nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "date_of_birth must be YYYY-MM-DD"})
			return
		}
		update.DateOfBirth = dob
	}

	player, err := h.store.UpdatePlayer(playerID, update)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, playerResponse(player))
}

func (h *PlayerHandler) Delete(ctx *gin.Context) {
	playerID, err := utils.GetIDParam(ctx, "player_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.DeletePlayer(playerID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
