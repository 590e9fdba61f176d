package transaction

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
	l := zap.L().Named("transaction.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("transaction.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Create(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.WriteError(c, h.logger, apperror.ErrUnauthorized)
		return
	}

	var req RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, h.logger, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Record(c.Request.Context(), caller, req)
	if err != nil {
		response.WriteError(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.WriteError(c, h.logger, apperror.ErrUnauthorized)
		return
	}

	res, err := h.service.List(c.Request.Context(), caller)
	if err != nil {
		response.WriteError(c, h.logger, err)
		return
	}

	meta := response.NewPaginationMeta(int64(len(res)), 1, len(res))
	response.Success(c, http.StatusOK, res, &meta)
}

// Summary takes an optional ?date=YYYY-MM-DD.
func (h *Handler) Summary(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.WriteError(c, h.logger, apperror.ErrUnauthorized)
		return
	}

	res, err := h.service.Summary(c.Request.Context(), caller, c.Query("date"))
	if err != nil {
		response.WriteError(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) PaymentTypes(c *gin.Context) {
	res, err := h.service.PaymentTypes(c.Request.Context())
	if err != nil {
		response.WriteError(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}
