package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/konselor/internal/api/response"
	"github.com/yoockh/konselor/internal/services"
)

type GenerationHandler struct {
	svc services.GenerationService
}

func NewGenerationHandler(svc services.GenerationService) *GenerationHandler {
	return &GenerationHandler{svc: svc}
}

type GenerateRequest struct {
	Prompt *string `json:"prompt"`
}

// Generate relays the upstream completion payload byte for byte.
func (h *GenerationHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if !bindJSON(c, "GenerationHandler.Generate", &req, true) {
		return
	}

	var prompt string
	if req.Prompt != nil {
		prompt = *req.Prompt
	}

	out, err := h.svc.Generate(c.Request.Context(), prompt)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", out)
}
