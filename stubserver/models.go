package stubserver

import "time"

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(255); not null" json:"name"`
	Email     string `gorm:"type:varchar(255); unique;not null" json:"email"`
	Password  string `gorm:"type:varchar(255); not null" json:"-"`
	Role      string `gorm:"type:varchar(255); not null" json:"role"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Restaurant struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	Name         string   `gorm:"type:varchar(255); not null" json:"name"`
	Address      string   `gorm:"type:varchar(255); not null" json:"address"`
	Latitude     float64  `gorm:"not null" json:"latitude"`
	Longitude    float64  `gorm:"not null" json:"longitude"`
	Category     string   `gorm:"type:varchar(255)" json:"category,omitempty"`
	OpeningHours string   `gorm:"type:varchar(255)" json:"opening_hours,omitempty"`
	Distance     float64  `gorm:"-" json:"distance,omitempty"`
	Menus        []Menu   `gorm:"foreignKey:RestaurantID" json:"menus"`
	Reviews      []Review `gorm:"foreignKey:RestaurantID" json:"reviews"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

type Menu struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RestaurantID uint   `gorm:"not null" json:"restaurant_id"`
	Name         string `gorm:"type:varchar(255); not null" json:"name"`
	Price        int    `gorm:"not null" json:"price"` // Rupiah utuh
	Description  string `gorm:"type:text" json:"description,omitempty"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

type Review struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RestaurantID uint   `gorm:"not null" json:"restaurant_id"`
	UserID       uint   `json:"-"`
	Rating       int    `gorm:"not null" json:"rating"`
	Comment      string `gorm:"type:text" json:"comment"`
	CreatedAt    time.Time `json:"-"`
}

type Favorite struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"not null;index" json:"-"`
	RestaurantID uint       `gorm:"not null" json:"-"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant"`
	CreatedAt    time.Time  `json:"-"`
}
