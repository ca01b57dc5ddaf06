package stubserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type menuInput struct {
	Name        string `json:"name" binding:"required"`
	Price       int    `json:"price" binding:"required,gt=0"`
	Description string `json:"description"`
}

// Endpoint menu memakai key "error" di payload kegagalan; begitulah backend
// aslinya, dan klien membaca keduanya.

func (h *Handler) CreateMenu(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	var restaurant Restaurant
	if err := h.DB.First(&restaurant, uint(restaurantID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
		return
	}

	var in menuInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	menu := Menu{
		RestaurantID: restaurant.ID,
		Name:         in.Name,
		Price:        in.Price,
		Description:  in.Description,
	}
	if err := h.DB.Create(&menu).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, menu)
}

func (h *Handler) UpdateMenu(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}
	menuID, err := strconv.ParseUint(c.Param("menuId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu id"})
		return
	}

	var menu Menu
	if err := h.DB.Where("restaurant_id = ?", uint(restaurantID)).First(&menu, uint(menuID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu not found"})
		return
	}

	var in menuInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	menu.Name = in.Name
	menu.Price = in.Price
	menu.Description = in.Description
	if err := h.DB.Save(&menu).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, menu)
}

func (h *Handler) DeleteMenu(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}
	menuID, err := strconv.ParseUint(c.Param("menuId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu id"})
		return
	}

	var menu Menu
	if err := h.DB.Where("restaurant_id = ?", uint(restaurantID)).First(&menu, uint(menuID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu not found"})
		return
	}

	if err := h.DB.Delete(&menu).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "message": "Menu deleted"})
}
