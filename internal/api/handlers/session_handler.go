package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/konselor/internal/api/response"
	"github.com/yoockh/konselor/internal/models"
	"github.com/yoockh/konselor/internal/services"
)

type SessionHandler struct {
	svc services.SessionService
}

func NewSessionHandler(svc services.SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// Fields accept any JSON value; non-strings are stored as their JSON text.
type CreateSessionRequest struct {
	UserName       any `json:"userName"`
	EthnicGroup    any `json:"ethnicGroup"`
	EducationLevel any `json:"educationLevel"`
}

type CreateSessionResponse struct {
	SessionID int64 `json:"sessionId"`
}

func (h *SessionHandler) Create(c *gin.Context) {
	var req CreateSessionRequest
	if !bindJSON(c, "SessionHandler.Create", &req, true) {
		return
	}

	sess, err := h.svc.Create(c.Request.Context(),
		orDefault(req.UserName, models.DefaultUserName),
		orDefault(req.EthnicGroup, models.DefaultCategory),
		orDefault(req.EducationLevel, models.DefaultCategory),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateSessionResponse{SessionID: sess.ID})
}

func orDefault(v any, def string) string {
	s := asText(v)
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func asText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
