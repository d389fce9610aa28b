package httpHandler

import (
	"net/http"
	"smarthome-server/entities"
	"smarthome-server/usecases"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	useCase *usecases.RecordUseCase
}

func NewUserHandler(useCase *usecases.RecordUseCase) *UserHandler {
	return &UserHandler{
		useCase: useCase,
	}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var user entities.User

	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.useCase.CreateUser(&user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"data":    user,
	})
}

// GetAllUsers handles GET /users
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.useCase.GetAllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve users",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  users,
		"count": len(users),
	})
}

// GetUserHouseArea handles GET /users/:user_id/house_area
func (h *UserHandler) GetUserHouseArea(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user id",
		})
		return
	}

	area, err := h.useCase.GetUserHouseArea(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":    id,
		"house_area": area,
	})
}

// GetAllHouseAreas handles GET /users/house_areas
func (h *UserHandler) GetAllHouseAreas(c *gin.Context) {
	areas, err := h.useCase.GetAllHouseAreas()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve house areas",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  areas,
		"count": len(areas),
	})
}
