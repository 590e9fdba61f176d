package company

import (
	"net/http"

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
	l := zap.L().Named("company.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetMe(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.WriteError(c, h.logger, apperror.ErrUnauthorized)
		return
	}

	comp, err := h.service.GetMine(c.Request.Context(), caller)
	if err != nil {
		response.WriteError(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, comp, nil)
}

func (h *Handler) UpdateMe(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.WriteError(c, h.logger, apperror.ErrUnauthorized)
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, h.logger, apperror.MapValidationError(err))
		return
	}

	comp, err := h.service.UpdateMine(c.Request.Context(), caller, req)
	if err != nil {
		response.WriteError(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, comp, nil)
}
