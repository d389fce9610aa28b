package httpHandler

import (
	"net/http"
	"smarthome-server/entities"
	"smarthome-server/usecases"

	"github.com/gin-gonic/gin"
)

type DeviceUsageHandler struct {
	useCase *usecases.RecordUseCase
}

func NewDeviceUsageHandler(useCase *usecases.RecordUseCase) *DeviceUsageHandler {
	return &DeviceUsageHandler{
		useCase: useCase,
	}
}

// CreateDeviceUsage handles POST /device_usage
func (h *DeviceUsageHandler) CreateDeviceUsage(c *gin.Context) {
	var usage entities.DeviceUsage

	if err := c.ShouldBindJSON(&usage); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.useCase.CreateDeviceUsage(&usage); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Device usage recorded successfully",
		"data":    usage,
	})
}

// GetAllDeviceUsage handles GET /device_usage
func (h *DeviceUsageHandler) GetAllDeviceUsage(c *gin.Context) {
	usage, err := h.useCase.GetAllDeviceUsage()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve device usage",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  usage,
		"count": len(usage),
	})
}
