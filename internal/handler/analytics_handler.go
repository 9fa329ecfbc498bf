package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kaidroger/logistics-analytics-go/internal/models"
	"github.com/kaidroger/logistics-analytics-go/internal/service"
	"github.com/kaidroger/logistics-analytics-go/pkg/response"
)

// AnalyticsHandler handles HTTP requests for dataset analytics
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// report loads the dataset's full report or writes the error response.
// Every analytics endpoint carves its payload out of the same report.
func (h *AnalyticsHandler) report(c *gin.Context) *models.OrderReport {
	report, err := h.service.Report(c.Param("id"))
	if err != nil {
		response.InternalError(c, "Failed to compute report")
		return nil
	}
	if report == nil {
		response.NotFound(c, "Dataset not found")
		return nil
	}
	return report
}

// GetReport handles GET /api/v1/datasets/:id/report
func (h *AnalyticsHandler) GetReport(c *gin.Context) {
	if report := h.report(c); report != nil {
		response.Success(c, report)
	}
}

// GetSummary handles GET /api/v1/datasets/:id/summary
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	if report := h.report(c); report != nil {
		response.Success(c, gin.H{
			"summary":      report.Summary,
			"skipped_rows": report.SkippedRows,
		})
	}
}

// GetFCPerformance handles GET /api/v1/datasets/:id/fc-performance
func (h *AnalyticsHandler) GetFCPerformance(c *gin.Context) {
	if report := h.report(c); report != nil {
		response.Success(c, report.FCPerformance)
	}
}

// GetProvincePerformance handles GET /api/v1/datasets/:id/province-performance
func (h *AnalyticsHandler) GetProvincePerformance(c *gin.Context) {
	if report := h.report(c); report != nil {
		response.Success(c, report.ProvincePerformance)
	}
}

// GetDistrictPerformance handles GET /api/v1/datasets/:id/district-performance
func (h *AnalyticsHandler) GetDistrictPerformance(c *gin.Context) {
	if report := h.report(c); report != nil {
		response.Success(c, report.DistrictPerformance)
	}
}

// GetValueDistribution handles GET /api/v1/datasets/:id/value-distribution
func (h *AnalyticsHandler) GetValueDistribution(c *gin.Context) {
	if report := h.report(c); report != nil {
		response.Success(c, report.ValueDistribution)
	}
}

// GetRepeatCustomers handles GET /api/v1/datasets/:id/repeat-customers
func (h *AnalyticsHandler) GetRepeatCustomers(c *gin.Context) {
	stats, err := h.service.RepeatCustomers(c.Param("id"))
	if err != nil {
		response.InternalError(c, "Failed to compute repeat-customer stats")
		return
	}
	if stats == nil {
		response.NotFound(c, "Dataset not found")
		return
	}

	response.Success(c, stats)
}
