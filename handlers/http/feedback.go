package httpHandler

import (
	"net/http"
	"smarthome-server/entities"
	"smarthome-server/usecases"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	useCase *usecases.RecordUseCase
}

func NewFeedbackHandler(useCase *usecases.RecordUseCase) *FeedbackHandler {
	return &FeedbackHandler{
		useCase: useCase,
	}
}

// CreateFeedback handles POST /feedback
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var feedback entities.Feedback

	if err := c.ShouldBindJSON(&feedback); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.useCase.CreateFeedback(&feedback); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Feedback created successfully",
		"data":    feedback,
	})
}

// GetAllFeedback handles GET /feedback
func (h *FeedbackHandler) GetAllFeedback(c *gin.Context) {
	feedback, err := h.useCase.GetAllFeedback()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve feedback",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  feedback,
		"count": len(feedback),
	})
}
