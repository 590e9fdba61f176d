package product

import (
	"errors"
	"io"
	"net/http"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/middleware"
	producterrors "github.com/TheLeeJungYan/EINV-POS-API/internal/product/errors"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/apperror"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const ImageFormField = "image"

type Handler struct {
	service       Service
	maxImageBytes int64
	logger        *zap.Logger
}

func NewHandler(service Service, maxImageBytes int64, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("product.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("product.handler")
	}
	return &Handler{service: service, maxImageBytes: maxImageBytes, logger: l}
}

// GetAll serves both the anonymous storefront and the back office.
func (h *Handler) GetAll(c *gin.Context) {
	caller, _ := middleware.GetCaller(c)

	res, err := h.service.List(c.Request.Context(), caller)
	if err != nil {
		response.WriteError(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	caller, _ := middleware.GetCaller(c)

	res, err := h.service.GetByID(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		response.WriteError(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Create(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.WriteError(c, h.logger, apperror.ErrUnauthorized)
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, h.logger, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Create(c.Request.Context(), caller, req)
	if err != nil {
		response.WriteError(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) Update(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.WriteError(c, h.logger, apperror.ErrUnauthorized)
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, h.logger, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Update(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		response.WriteError(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.WriteError(c, h.logger, apperror.ErrUnauthorized)
		return
	}

	if err := h.service.Delete(c.Request.Context(), caller, c.Param("id")); err != nil {
		response.WriteError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.WriteError(c, h.logger, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Quote(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.WriteError(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// UploadImage takes a multipart file in the "image" field.
func (h *Handler) UploadImage(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.WriteError(c, h.logger, apperror.ErrUnauthorized)
		return
	}

	fh, err := c.FormFile(ImageFormField)
	if err != nil {
		response.WriteError(c, h.logger, producterrors.ErrImageRequired)
		return
	}
	if h.maxImageBytes > 0 && fh.Size > h.maxImageBytes {
		response.WriteError(c, h.logger, producterrors.ErrImageTooLarge)
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.WriteError(c, h.logger, apperror.IO("Failed to read uploaded image", err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.WriteError(c, h.logger, apperror.IO("Failed to read uploaded image", err))
		return
	}

	res, err := h.service.UploadImage(c.Request.Context(), caller, c.Param("id"), data)
	if err != nil {
		response.WriteError(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}
