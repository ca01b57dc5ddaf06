package stubserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListFavorites mengembalikan favorit milik user yang login; query
// restaurant_id menyaring ke satu restoran (dipakai layar detail untuk cek
// status).
func (h *Handler) ListFavorites(c *gin.Context) {
	query := h.DB.Preload("Restaurant").Preload("Restaurant.Menus").Preload("Restaurant.Reviews").
		Where("user_id = ?", currentUserID(c))

	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		id, err := strconv.ParseUint(restaurantID, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid restaurant_id"})
			return
		}
		query = query.Where("restaurant_id = ?", uint(id))
	}

	favorites := []Favorite{}
	if err := query.Find(&favorites).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, favorites)
}

func (h *Handler) CreateFavorite(c *gin.Context) {
	var in struct {
		RestaurantID uint `json:"restaurant_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var restaurant Restaurant
	if err := h.DB.First(&restaurant, in.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "restaurant not found"})
		return
	}

	userID := currentUserID(c)
	var existing Favorite
	if err := h.DB.Where("user_id = ? AND restaurant_id = ?", userID, in.RestaurantID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Restaurant already in favorites"})
		return
	}

	favorite := Favorite{UserID: userID, RestaurantID: in.RestaurantID}
	if err := h.DB.Create(&favorite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	if err := h.DB.Preload("Restaurant").Preload("Restaurant.Menus").First(&favorite, favorite.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, favorite)
}

// DeleteFavorite hanya boleh menghapus favorit milik sendiri; id di path
// adalah id record favorit.
func (h *Handler) DeleteFavorite(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid favorite id"})
		return
	}

	var favorite Favorite
	if err := h.DB.Where("user_id = ?", currentUserID(c)).First(&favorite, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "favorite not found"})
		return
	}

	if err := h.DB.Delete(&favorite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "message": "Favorite removed"})
}
