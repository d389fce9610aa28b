package httpHandler

import (
	"net/http"
	"smarthome-server/entities"
	"smarthome-server/usecases"

	"github.com/gin-gonic/gin"
)

type DeviceHandler struct {
	useCase *usecases.RecordUseCase
}

func NewDeviceHandler(useCase *usecases.RecordUseCase) *DeviceHandler {
	return &DeviceHandler{
		useCase: useCase,
	}
}

// CreateDevice handles POST /devices
func (h *DeviceHandler) CreateDevice(c *gin.Context) {
	var device entities.Device

	if err := c.ShouldBindJSON(&device); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.useCase.CreateDevice(&device); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Device created successfully",
		"data":    device,
	})
}

// GetAllDevices handles GET /devices
func (h *DeviceHandler) GetAllDevices(c *gin.Context) {
	devices, err := h.useCase.GetAllDevices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve devices",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  devices,
		"count": len(devices),
	})
}
