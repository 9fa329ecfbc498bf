package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kaidroger/logistics-analytics-go/internal/models"
	"github.com/kaidroger/logistics-analytics-go/internal/service"
	"github.com/kaidroger/logistics-analytics-go/pkg/response"
)

// DatasetHandler handles HTTP requests for the dataset lifecycle
type DatasetHandler struct {
	service *service.DatasetService
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(service *service.DatasetService) *DatasetHandler {
	return &DatasetHandler{service: service}
}

// IngestRequest is the dataset upload body: a name plus already-typed order
// rows (spreadsheet parsing happens upstream of this API)
type IngestRequest struct {
	Name string               `json:"name" binding:"required"`
	Rows []models.OrderRecord `json:"rows" binding:"required"`
}

// IngestDataset handles POST /api/v1/datasets
func (h *DatasetHandler) IngestDataset(c *gin.Context) {
	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: name and rows are required")
		return
	}

	ds, err := h.service.Ingest(req.Name, req.Rows)
	if err != nil {
		response.InternalError(c, "Failed to ingest dataset")
		return
	}

	response.Created(c, ds)
}

// ListDatasets handles GET /api/v1/datasets
func (h *DatasetHandler) ListDatasets(c *gin.Context) {
	datasets, err := h.service.ListDatasets()
	if err != nil {
		response.InternalError(c, "Failed to list datasets")
		return
	}
	if datasets == nil {
		datasets = []models.Dataset{}
	}

	response.Success(c, gin.H{
		"data":  datasets,
		"total": len(datasets),
	})
}

// GetDataset handles GET /api/v1/datasets/:id
func (h *DatasetHandler) GetDataset(c *gin.Context) {
	ds, err := h.service.GetDataset(c.Param("id"))
	if err != nil {
		response.InternalError(c, "Failed to get dataset")
		return
	}
	if ds == nil {
		response.NotFound(c, "Dataset not found")
		return
	}

	response.Success(c, ds)
}

// DeleteDataset handles DELETE /api/v1/datasets/:id
func (h *DatasetHandler) DeleteDataset(c *gin.Context) {
	deleted, err := h.service.DeleteDataset(c.Param("id"))
	if err != nil {
		response.InternalError(c, "Failed to delete dataset")
		return
	}
	if !deleted {
		response.NotFound(c, "Dataset not found")
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
