package httpHandler

import (
	"encoding/json"
	"log"
	"net/http"
	"smarthome-server/entities"
	"smarthome-server/usecases"
	"smarthome-server/ws"

	"github.com/gin-gonic/gin"
)

type SecurityEventHandler struct {
	useCase *usecases.RecordUseCase
	mgr     *ws.Manager
}

func NewSecurityEventHandler(useCase *usecases.RecordUseCase, mgr *ws.Manager) *SecurityEventHandler {
	return &SecurityEventHandler{
		useCase: useCase,
		mgr:     mgr,
	}
}

// CreateSecurityEvent handles POST /security_events
func (h *SecurityEventHandler) CreateSecurityEvent(c *gin.Context) {
	var event entities.SecurityEvent

	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.useCase.CreateSecurityEvent(&event); err != nil {
		respondError(c, err)
		return
	}

	// Push the stored event to live feed subscribers; the record is already
	// persisted, so a failed push is only logged
	if h.mgr != nil {
		payload, err := json.Marshal(gin.H{"type": "security_event", "data": event})
		if err == nil {
			h.mgr.Broadcast(payload)
		} else {
			log.Printf("failed to encode security event %d for broadcast: %v", event.ID, err)
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Security event created successfully",
		"data":    event,
	})
}

// GetAllSecurityEvents handles GET /security_events
func (h *SecurityEventHandler) GetAllSecurityEvents(c *gin.Context) {
	events, err := h.useCase.GetAllSecurityEvents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve security events",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  events,
		"count": len(events),
	})
}
