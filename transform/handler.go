package transform

import (
	"github.com/gin-gonic/gin"

	"github.com/kbukum/textmorph/auth/authctx"
	"github.com/kbukum/textmorph/errors"
	"github.com/kbukum/textmorph/server"
	"github.com/kbukum/textmorph/validation"
)

type transformRequest struct {
	SelectedText string `json:"selectedText" validate:"required"`
	Command      string `json:"command" validate:"required"`
}

type transformResponse struct {
	TransformedText string `json:"transformedText"`
}

// Handler exposes the transform endpoint over Gin.
type Handler struct {
	svc *Service
}

// NewHandler creates the transform HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the transform endpoint behind the auth middleware.
func (h *Handler) RegisterRoutes(r *gin.Engine, authMW gin.HandlerFunc) {
	api := r.Group("/api", authMW)
	api.POST("/transform", h.Transform)
}

// Transform handles POST /api/transform.
func (h *Handler) Transform(c *gin.Context) {
	var req transformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, errors.InvalidArgument("invalid request body"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	identity := authctx.MustGet(c.Request.Context())
	transformed, err := h.svc.Transform(c.Request.Context(), identity.UserID, req.Command, req.SelectedText)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	server.RespondOK(c, transformResponse{TransformedText: transformed})
}
