package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kaidroger/logistics-analytics-go/internal/distfilter"
	"github.com/kaidroger/logistics-analytics-go/internal/models"
	"github.com/kaidroger/logistics-analytics-go/internal/service"
	"github.com/kaidroger/logistics-analytics-go/pkg/response"
)

// HubHandler handles HTTP requests for hubs, territories and destination
// filtering
type HubHandler struct {
	hubs      *service.HubService
	territory *service.TerritoryService
}

// NewHubHandler creates a new hub handler
func NewHubHandler(hubs *service.HubService, territory *service.TerritoryService) *HubHandler {
	return &HubHandler{hubs: hubs, territory: territory}
}

// GetHubs handles GET /api/v1/hubs
func (h *HubHandler) GetHubs(c *gin.Context) {
	hubs, err := h.hubs.GetHubs()
	if err != nil {
		response.InternalError(c, "Failed to get hubs")
		return
	}
	if hubs == nil {
		hubs = []models.Hub{}
	}

	response.Success(c, gin.H{
		"data":  hubs,
		"total": len(hubs),
	})
}

// GetHubByID handles GET /api/v1/hubs/:id
func (h *HubHandler) GetHubByID(c *gin.Context) {
	id, ok := hubID(c)
	if !ok {
		return
	}

	hub, err := h.hubs.GetHubByID(id)
	if err != nil {
		response.InternalError(c, "Failed to get hub")
		return
	}
	if hub == nil {
		response.NotFound(c, "Hub not found")
		return
	}

	response.Success(c, hub)
}

// GetTerritory handles GET /api/v1/hubs/:id/territory
func (h *HubHandler) GetTerritory(c *gin.Context) {
	id, ok := hubID(c)
	if !ok {
		return
	}

	territory, err := h.territory.ComputeTerritory(id)
	if err != nil {
		response.InternalError(c, "Failed to compute territory")
		return
	}
	if territory == nil {
		response.NotFound(c, "Hub not found")
		return
	}

	response.Success(c, territory)
}

// GetDestinations handles GET /api/v1/hubs/:id/destinations
func (h *HubHandler) GetDestinations(c *gin.Context) {
	id, ok := hubID(c)
	if !ok {
		return
	}

	var filter models.DestinationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	dests, found, err := h.territory.FilterDestinations(id, filter)
	if err != nil {
		response.InternalError(c, "Failed to filter destinations")
		return
	}
	if !found {
		response.NotFound(c, "Hub not found")
		return
	}

	response.Success(c, gin.H{
		"data":  dests,
		"total": len(dests),
	})
}

// GetFilterSummary handles GET /api/v1/hubs/:id/filter-summary
func (h *HubHandler) GetFilterSummary(c *gin.Context) {
	id, ok := hubID(c)
	if !ok {
		return
	}

	var filter models.DestinationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	summary, err := h.territory.FilterSummary(id, distfilter.Options{
		CarrierType:   filter.CarrierType,
		MaxDistanceKm: filter.MaxDistanceKm,
	})
	if err != nil {
		response.InternalError(c, "Failed to compute filter summary")
		return
	}
	if summary == nil {
		response.NotFound(c, "Hub not found")
		return
	}

	response.Success(c, summary)
}

// hubID parses the :id path parameter, writing the error response on
// failure
func hubID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid hub ID")
		return 0, false
	}
	return id, true
}
