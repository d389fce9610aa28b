package httpHandler

import (
	"net/http"
	"smarthome-server/usecases"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	useCase *usecases.ReportUseCase
}

func NewReportHandler(useCase *usecases.ReportUseCase) *ReportHandler {
	return &ReportHandler{
		useCase: useCase,
	}
}

// GetUsageSummary handles GET /device_usage/summary
func (h *ReportHandler) GetUsageSummary(c *gin.Context) {
	rows, err := h.useCase.UsageSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute usage summary",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  rows,
		"count": len(rows),
	})
}

// GetUsageTimeDistribution handles GET /device_usage/time_distribution
func (h *ReportHandler) GetUsageTimeDistribution(c *gin.Context) {
	rows, err := h.useCase.UsageTimeDistribution()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute usage time distribution",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  rows,
		"count": len(rows),
	})
}

// GetUsageByHouseArea handles GET /usage_by_house_area
func (h *ReportHandler) GetUsageByHouseArea(c *gin.Context) {
	rows, err := h.useCase.UsageByHouseArea()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute usage by house area",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  rows,
		"count": len(rows),
	})
}
