package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scoutconnect-dev/scoutconnect/internal/models"
	"github.com/scoutconnect-dev/scoutconnect/internal/store"
	"github.com/scoutconnect-dev/scoutconnect/internal/utils"
)

type CreateEvaluationRequest struct {
	PlayerID uint               `json:"player_id" binding:"required"`
	Sport    string             `json:"sport" binding:"required"`
	Criteria map[string]float64 `json:"criteria"`
	Score    float64            `json:"score"`
	Notes    string             `json:"notes"`
}

type UpdateEvaluationRequest struct {
	Sport    *string            `json:"sport"`
	Criteria map[string]float64 `json:"criteria"`
	Score    *float64           `json:"score"`
	Notes    *string            `json:"notes"`
}

type EvaluationResponse struct {
	ID          uint               `json:"id"`
	PlayerID    uint               `json:"player_id"`
	EvaluatorID *uint              `json:"evaluator_id"`
	Sport       string             `json:"sport"`
	Criteria    map[string]float64 `json:"criteria"`
	Score       float64            `json:"score"`
	Notes       string             `json:"notes"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func evaluationResponse(evaluation *models.Evaluation) EvaluationResponse {
	criteria := map[string]float64{}

	if len(evaluation.Criteria) > 0 {
		if err := json.Unmarshal(evaluation.Criteria, &criteria); err != nil {
			log.Printf("Failed to decode criteria for evaluation %d: %v", evaluation.ID, err)
		}
	}

	return EvaluationResponse{
		ID:          evaluation.ID,
		PlayerID:    evaluation.PlayerID,
		EvaluatorID: evaluation.EvaluatorID,
		Sport:       evaluation.Sport,
		Criteria:    criteria,
		Score:       evaluation.Score,
		Notes:       evaluation.Notes,
		CreatedAt:   evaluation.CreatedAt,
		UpdatedAt:   evaluation.UpdatedAt,
	}
}

type EvaluationHandler struct {
	store *store.Store
}

func NewEvaluationHandler(store *store.Store) *EvaluationHandler {
	return &EvaluationHandler{store: store}
}

func (h *EvaluationHandler) Create(ctx *gin.Context) {
	var req CreateEvaluationRequest

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

	evaluatorID := account.ID

	evaluation, err := h.store.CreateEvaluation(store.NewEvaluation{
		PlayerID:    req.PlayerID,
		EvaluatorID: &evaluatorID,
		Sport:       req.Sport,
		Criteria:    req.Criteria,
		Score:       req.Score,
		Notes:       req.Notes,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, evaluationResponse(evaluation))
}

func (h *EvaluationHandler) List(ctx *gin.Context) {
	skip, limit := utils.GetPageParams(ctx)

	var playerID *uint

	if raw := ctx.Query("player_id"); raw != "" {
		id, err := utils.ParseID(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid player_id"})
			return
		}
		playerID = &id
	}

	evaluations, err := h.store.ListEvaluations(skip, limit, playerID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]EvaluationResponse, 0, len(evaluations))

	for i := range evaluations {
		response = append(response, evaluationResponse(&evaluations[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *EvaluationHandler) Get(ctx *gin.Context) {
	evaluationID, err := utils.GetIDParam(ctx, "evaluation_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	evaluation, err := h.store.GetEvaluation(evaluationID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, evaluationResponse(evaluation))
}

func (h *EvaluationHandler) Update(ctx *gin.Context) {
	evaluationID, err := utils.GetIDParam(ctx, "evaluation_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req UpdateEvaluationRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	evaluation, err := h.store.UpdateEvaluation(evaluationID, store.EvaluationUpdate{
		Sport:    req.Sport,
		Criteria: req.Criteria,
		Score:    req.Score,
		Notes:    req.Notes,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, evaluationResponse(evaluation))
}

func (h *EvaluationHandler) Delete(ctx *gin.Context) {
	evaluationID, err := utils.GetIDParam(ctx, "evaluation_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.DeleteEvaluation(evaluationID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
