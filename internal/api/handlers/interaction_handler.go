package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/konselor/internal/api/response"
	"github.com/yoockh/konselor/internal/services"
)

type InteractionHandler struct {
	svc services.InteractionService
}

func NewInteractionHandler(svc services.InteractionService) *InteractionHandler {
	return &InteractionHandler{svc: svc}
}

// Text fields must be present but may be empty strings.
type RecordInteractionRequest struct {
	SessionID    int64   `json:"sessionId" binding:"required"`
	FeatureTitle *string `json:"featureTitle" binding:"required"`
	UserInput    *string `json:"userInput" binding:"required"`
	AIOutput     *string `json:"aiOutput" binding:"required"`
}

func (h *InteractionHandler) Record(c *gin.Context) {
	var req RecordInteractionRequest
	if !bindJSON(c, "InteractionHandler.Record", &req, false) {
		return
	}

	_, err := h.svc.Record(c.Request.Context(), req.SessionID, *req.FeatureTitle, *req.UserInput, *req.AIOutput)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusCreated)
}
