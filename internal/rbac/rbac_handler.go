package rbac

import (
	"net/http"
	"strings"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/domain"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/middleware"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/apperror"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &Handler{service: service, logger: l}
}

type CheckRequest struct {
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type PermissionsResponse struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// Enforce checks a permission for the caller's own role.
func (h *Handler) Enforce(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.WriteError(c, h.logger, apperror.ErrUnauthorized)
		return
	}

	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, h.logger, apperror.MapValidationError(err))
		return
	}

	allowed, err := h.service.Enforce(domain.EnforceRequest{
		Role:     caller.Role,
		Resource: strings.TrimSpace(req.Resource),
		Action:   strings.TrimSpace(req.Action),
	})
	if err != nil {
		response.WriteError(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, domain.EnforceResponse{Allowed: allowed}, nil)
}

func (h *Handler) Permissions(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.WriteError(c, h.logger, apperror.ErrUnauthorized)
		return
	}

	perms, err := h.service.Permissions(caller.Role)
	if err != nil {
		response.WriteError(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, PermissionsResponse{
		Role:        caller.Role.String(),
		Permissions: perms,
	}, nil)
}
