package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/SscSPs/currency_converter_app/internal/dto"
	"github.com/SscSPs/currency_converter_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// registerSampleRoutes registers the alternate-variant sample items route.
func registerSampleRoutes(rg *gin.RouterGroup, sampleService portssvc.SampleItemSvc) {
	rg.GET("/sample", func(c *gin.Context) {
		listSampleItems(c, sampleService)
	})
}

// listSampleItems godoc
// @Summary List sample items
// @Tags sample
// @Produce  json
// @Success 200 {array} dto.SampleItemResponse
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /sample [get]
func listSampleItems(c *gin.Context, sampleService portssvc.SampleItemSvc) {
	items, err := sampleService.ListSampleItems(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to list sample items", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListSampleItemResponse(items))
}
