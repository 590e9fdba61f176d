package auth

import (
	"net/http"
	"time"

	autherrors "github.com/TheLeeJungYan/EINV-POS-API/internal/auth/errors"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/middleware"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/apperror"
	platform "github.com/TheLeeJungYan/EINV-POS-API/internal/shared/request"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CookieConfig controls the access_token cookie handed to web clients.
type CookieConfig struct {
	Secure bool
	MaxAge time.Duration
}

type Handler struct {
	service Service
	cookies CookieConfig
	logger  *zap.Logger
}

func NewHandler(s Service, cookies CookieConfig, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, cookies: cookies, logger: l}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, h.logger, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.WriteError(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, h.logger, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		response.WriteError(c, h.logger, err)
		return
	}

	if h.isWeb(c) {
		h.setAccessCookie(c, res.AccessToken, int(h.cookies.MaxAge.Seconds()))
	}

	response.Success(c, http.StatusOK, res, nil)
}

// Refresh takes the token from the cookie for web clients and from the body
// for everyone else.
func (h *Handler) Refresh(c *gin.Context) {
	isWeb := h.isWeb(c)

	var token string
	if isWeb {
		token, _ = c.Cookie(middleware.AccessTokenName)
		if token == "" {
			response.WriteError(c, h.logger, autherrors.ErrMissingToken)
			return
		}
	} else {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.WriteError(c, h.logger, apperror.MapValidationError(err))
			return
		}
		token = req.AccessToken
	}

	res, err := h.service.Refresh(c.Request.Context(), token)
	if err != nil {
		response.WriteError(c, h.logger, err)
		return
	}

	if isWeb {
		h.setAccessCookie(c, res.AccessToken, int(h.cookies.MaxAge.Seconds()))
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Me(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.WriteError(c, h.logger, apperror.ErrUnauthorized)
		return
	}

	res, err := h.service.Me(c.Request.Context(), caller)
	if err != nil {
		response.WriteError(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// Logout only clears the cookie. Tokens are stateless and expire on their own.
func (h *Handler) Logout(c *gin.Context) {
	h.setAccessCookie(c, "", -1)
	response.Success(c, http.StatusOK, "Logout success.", nil)
}

func (h *Handler) isWeb(c *gin.Context) bool {
	clientType := platform.ResolveClientType(c.GetHeader(platform.ClientTypeHeader), c.GetHeader("User-Agent"))
	return platform.IsWebClient(clientType)
}

func (h *Handler) setAccessCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.AccessTokenName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
