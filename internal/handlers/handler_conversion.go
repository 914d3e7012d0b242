package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/SscSPs/currency_converter_app/internal/dto"
	"github.com/SscSPs/currency_converter_app/internal/middleware"
	"github.com/SscSPs/currency_converter_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// conversionHandler handles HTTP requests related to conversion history.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(cs portssvc.ConversionSvcFacade) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
	}
}

// registerConversionRoutes registers routes related to conversions.
// writeLimit guards the only write endpoint.
func registerConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade, writeLimit gin.HandlerFunc) {
	h := newConversionHandler(conversionService)

	conversions := rg.Group("/conversions")
	{
		conversions.GET("", h.listConversions)
		conversions.POST("", writeLimit, h.createConversion)
	}
}

// createConversion godoc
// @Summary Save a conversion
// @Description Persists a conversion computed by the client and returns it with its assigned id
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   conversion body dto.CreateConversionRequest true "Conversion details"
// @Success 201 {object} dto.ConversionResponse
// @Failure 400 {object} dto.ErrorResponse "Missing field or validation error"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Failed to save conversion"
// @Router /conversions [post]
func (h *conversionHandler) createConversion(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateConversion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	// The amount is logged only once the service has bounded it.
	logger.Info("Received request to save conversion", slog.String("target_currency", req.TargetCurrency))

	created, err := h.conversionService.CreateConversion(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error saving conversion", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to save conversion in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to save conversion"})
		}
		return
	}

	metrics.RecordConversionCreated(created.TargetCurrency)
	logger.Info("Conversion saved successfully",
		slog.Int64("conversion_id", created.ConversionID),
		slog.String("amount", created.Amount.String()),
	)
	c.JSON(http.StatusCreated, dto.ToConversionResponse(created))
}

// listConversions godoc
// @Summary List conversion history
// @Description Retrieves every saved conversion, newest first
// @Tags conversions
// @Produce  json
// @Success 200 {array} dto.ConversionResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list conversions"
// @Router /conversions [get]
func (h *conversionHandler) listConversions(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	logger.Info("Received request to list conversions")

	conversions, err := h.conversionService.ListConversions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list conversions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list conversions"})
		return
	}

	logger.Info("Conversions listed successfully", slog.Int("count", len(conversions)))
	c.JSON(http.StatusOK, dto.ToListConversionResponse(conversions))
}
