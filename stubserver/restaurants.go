package stubserver

import (
	"math"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
)

type restaurantInput struct {
	Name         string  `json:"name" binding:"required"`
	Address      string  `json:"address" binding:"required"`
	Latitude     float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude    float64 `json:"longitude" binding:"min=-180,max=180"`
	Category     string  `json:"category"`
	OpeningHours string  `json:"opening_hours"`
}

// ListRestaurants mengembalikan semua restoran. Kalau lat/lon diberikan,
// jarak haversine dihitung dan daftar diurutkan dari yang terdekat.
func (h *Handler) ListRestaurants(c *gin.Context) {
	var restaurants []Restaurant
	if err := h.DB.Preload("Menus").Preload("Reviews").Find(&restaurants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr != "" && lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid lat/lon"})
			return
		}
		for i := range restaurants {
			restaurants[i].Distance = haversineKm(lat, lon, restaurants[i].Latitude, restaurants[i].Longitude)
		}
		sort.Slice(restaurants, func(i, j int) bool {
			return restaurants[i].Distance < restaurants[j].Distance
		})
	}

	c.JSON(http.StatusOK, restaurants)
}

func (h *Handler) CreateRestaurant(c *gin.Context) {
	var in restaurantInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	restaurant := Restaurant{
		Name:         in.Name,
		Address:      in.Address,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		Category:     in.Category,
		OpeningHours: in.OpeningHours,
		Menus:        []Menu{},
		Reviews:      []Review{},
	}
	if err := h.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, restaurant)
}

func (h *Handler) UpdateRestaurant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid restaurant id"})
		return
	}

	var restaurant Restaurant
	if err := h.DB.First(&restaurant, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "restaurant not found"})
		return
	}

	var in restaurantInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	restaurant.Name = in.Name
	restaurant.Address = in.Address
	restaurant.Latitude = in.Latitude
	restaurant.Longitude = in.Longitude
	restaurant.Category = in.Category
	restaurant.OpeningHours = in.OpeningHours
	if err := h.DB.Save(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	if err := h.DB.Preload("Menus").Preload("Reviews").First(&restaurant, restaurant.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

func (h *Handler) DeleteRestaurant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid restaurant id"})
		return
	}

	var restaurant Restaurant
	if err := h.DB.First(&restaurant, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "restaurant not found"})
		return
	}

	// Bersihkan record turunan dulu; sqlite di mode default tidak menjalankan
	// cascade.
	h.DB.Where("restaurant_id = ?", restaurant.ID).Delete(&Menu{})
	h.DB.Where("restaurant_id = ?", restaurant.ID).Delete(&Review{})
	h.DB.Where("restaurant_id = ?", restaurant.ID).Delete(&Favorite{})
	if err := h.DB.Delete(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "message": "Restaurant deleted"})
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
