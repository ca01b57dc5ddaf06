// Package stubserver adalah tiruan lokal backend RestoFood: cukup untuk
// pengembangan klien tanpa server sungguhan, dan menjadi lawan bicara semua
// test controller. Bukan backend produksi.
package stubserver

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeremiapane/restofood-client/utils"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// Open membuka database sqlite (":memory:" untuk test) dan melakukan migrasi.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&User{},
		&Restaurant{},
		&Menu{},
		&Review{},
		&Favorite{},
	); err != nil {
		return nil, err
	}
	return db, nil
}

// NewRouter merakit seluruh endpoint di bawah /api. Endpoint mutasi restoran
// dan menu hanya untuk admin.
func NewRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		utils.InfoLogger.Printf("Incoming request: %s %s", c.Request.Method, c.Request.URL.Path)
		c.Next()
	})

	h := NewHandler(db)

	api := r.Group("/api")
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)

	authed := api.Group("", authMiddleware())
	authed.GET("/user", h.GetUser)
	authed.GET("/restaurants", h.ListRestaurants)
	authed.GET("/favorites", h.ListFavorites)
	authed.POST("/favorites", h.CreateFavorite)
	authed.DELETE("/favorites/:id", h.DeleteFavorite)

	admin := authed.Group("", adminOnly())
	admin.POST("/restaurants", h.CreateRestaurant)
	admin.PUT("/restaurants/:id", h.UpdateRestaurant)
	admin.DELETE("/restaurants/:id", h.DeleteRestaurant)
	admin.POST("/restaurants/:id/menus", h.CreateMenu)
	admin.PUT("/restaurants/:id/menus/:menuId", h.UpdateMenu)
	admin.DELETE("/restaurants/:id/menus/:menuId", h.DeleteMenu)

	return r
}

// SeedDemo mengisi akun dan data contoh untuk mode stub lokal; tidak dipakai
// test. Akun bawaan: admin@restofood.id/admin123 dan budi@example.com/rahasia1.
func SeedDemo(db *gorm.DB) error {
	var count int64
	db.Model(&Restaurant{}).Count(&count)
	if count > 0 {
		return nil
	}

	users := []struct {
		name, email, password, role string
	}{
		{"Admin RestoFood", "admin@restofood.id", "admin123", "admin"},
		{"Budi Santoso", "budi@example.com", "rahasia1", "user"},
	}
	for _, u := range users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := User{Name: u.name, Email: u.email, Password: string(hashed), Role: u.role}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}

	restaurants := []Restaurant{
		{
			Name:         "Warung Nasi Uduk Bu Siti",
			Address:      "Jl. Kebon Jeruk No. 12, Jakarta Barat",
			Latitude:     -6.19,
			Longitude:    106.78,
			Category:     "Indonesian",
			OpeningHours: "07:00-21:00",
			Menus: []Menu{
				{Name: "Nasi Uduk Komplit", Price: 25000, Description: "Dengan ayam goreng dan sambal kacang"},
				{Name: "Es Teh Manis", Price: 5000},
			},
		},
		{
			Name:         "Bakso Pak Kumis",
			Address:      "Jl. Sudirman No. 45, Jakarta Pusat",
			Latitude:     -6.21,
			Longitude:    106.82,
			Category:     "Street Food",
			OpeningHours: "10:00-22:00",
			Menus: []Menu{
				{Name: "Bakso Urat Jumbo", Price: 20000},
			},
		},
		{
			Name:         "Sushi Hana",
			Address:      "Jl. Senopati No. 8, Jakarta Selatan",
			Latitude:     -6.23,
			Longitude:    106.81,
			Category:     "Japanese",
			OpeningHours: "11:00-22:00",
		},
	}
	for i := range restaurants {
		if err := db.Create(&restaurants[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
