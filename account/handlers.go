package account

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/textmorph/auth/authctx"
	"github.com/kbukum/textmorph/errors"
	"github.com/kbukum/textmorph/server"
	"github.com/kbukum/textmorph/server/middleware"
	"github.com/kbukum/textmorph/store"
	"github.com/kbukum/textmorph/validation"
)

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// loginRequest deliberately skips the password length rules. A short password
// on login is simply a wrong password and must fail the same way as any other
// wrong password, not with a validation error.
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateLLMKeyRequest struct {
	LLMAPIKey string `json:"llmApiKey" validate:"required"`
}

type userPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

type profileResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	HasLLMKey bool   `json:"hasLLMKey"`
}

type transformationPayload struct {
	ID              string    `json:"id"`
	Command         string    `json:"command"`
	SelectedText    string    `json:"selectedText"`
	TransformedText string    `json:"transformedText"`
	CreatedAt       time.Time `json:"createdAt"`
}

type statsResponse struct {
	TotalTransformations  int64                   `json:"totalTransformations"`
	RecentTransformations []transformationPayload `json:"recentTransformations"`
}

// Handler exposes the account endpoints over Gin.
type Handler struct {
	svc *Service
}

// NewHandler creates the account HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the account endpoints. Routes that require an
// authenticated caller are guarded by authMW.
func (h *Handler) RegisterRoutes(r *gin.Engine, authMW gin.HandlerFunc) {
	public := r.Group("/auth")
	{
		public.POST("/signup", h.Signup)
		public.POST("/login", h.Login)
		public.POST("/get-token", h.GetToken)
		public.POST("/logout", h.Logout)
	}

	protected := r.Group("/auth", authMW)
	{
		protected.GET("/profile", h.Profile)
		protected.PUT("/llm-key", h.UpdateLLMKey)
		protected.GET("/stats", h.Stats)
	}
}

// Signup handles POST /auth/signup.
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, errors.InvalidArgument("invalid request body"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	session, err := h.svc.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	h.setSessionCookie(c, session.Token)
	server.RespondOK(c, newAuthResponse(session))
}

// Login handles POST /auth/login. On success it sets the session cookie in
// addition to returning the token in the body.
func (h *Handler) Login(c *gin.Context) {
	session, ok := h.authenticate(c)
	if !ok {
		return
	}
	h.setSessionCookie(c, session.Token)
	server.RespondOK(c, newAuthResponse(session))
}

// GetToken handles POST /auth/get-token. It behaves exactly like login but
// never touches cookies, for clients that manage the bearer token themselves.
func (h *Handler) GetToken(c *gin.Context) {
	session, ok := h.authenticate(c)
	if !ok {
		return
	}
	server.RespondOK(c, newAuthResponse(session))
}

// Logout handles POST /auth/logout. The token itself stays valid until expiry;
// logout only clears the browser cookie.
func (h *Handler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	server.RespondNoContent(c)
}

// Profile handles GET /auth/profile.
func (h *Handler) Profile(c *gin.Context) {
	identity := authctx.MustGet(c.Request.Context())

	user, err := h.svc.Profile(c.Request.Context(), identity.UserID)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	server.RespondOK(c, profileResponse{
		ID:        user.ID,
		Email:     user.Email,
		HasLLMKey: user.HasLLMKey(),
	})
}

// UpdateLLMKey handles PUT /auth/llm-key.
func (h *Handler) UpdateLLMKey(c *gin.Context) {
	var req updateLLMKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, errors.InvalidArgument("invalid request body"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	identity := authctx.MustGet(c.Request.Context())
	if err := h.svc.SetLLMKey(c.Request.Context(), identity.UserID, req.LLMAPIKey); err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondNoContent(c)
}

// Stats handles GET /auth/stats.
func (h *Handler) Stats(c *gin.Context) {
	identity := authctx.MustGet(c.Request.Context())

	stats, err := h.svc.Stats(c.Request.Context(), identity.UserID)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	recent := make([]transformationPayload, 0, len(stats.Recent))
	for _, t := range stats.Recent {
		recent = append(recent, newTransformationPayload(t))
	}
	server.RespondOK(c, statsResponse{
		TotalTransformations:  stats.Total,
		RecentTransformations: recent,
	})
}

func (h *Handler) authenticate(c *gin.Context) (*Session, bool) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, errors.InvalidArgument("invalid request body"))
		return nil, false
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return nil, false
	}

	session, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		server.RespondWithError(c, err)
		return nil, false
	}
	return session, true
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(h.svc.TokenTTL().Seconds()), "/", "", true, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", true, true)
}

func newAuthResponse(session *Session) authResponse {
	return authResponse{
		Token: session.Token,
		User: userPayload{
			ID:    session.User.ID,
			Email: session.User.Email,
		},
	}
}

func newTransformationPayload(t store.Transformation) transformationPayload {
	return transformationPayload{
		ID:              t.ID,
		Command:         t.Command,
		SelectedText:    t.SelectedText,
		TransformedText: t.TransformedText,
		CreatedAt:       t.CreatedAt,
	}
}
