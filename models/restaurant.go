package models

// Restaurant adalah data restoran yang dikembalikan backend. Field Distance
// hanya terisi jika pencarian menyertakan koordinat.
type Restaurant struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Category     string   `json:"category,omitempty"`
	OpeningHours string   `json:"opening_hours,omitempty"`
	Distance     float64  `json:"distance,omitempty"`
	Menus        []Menu   `json:"menus,omitempty"`
	Reviews      []Review `json:"reviews,omitempty"`
}

type Menu struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"` // Rupiah utuh, tanpa unit minor
	Description string `json:"description,omitempty"`
}

type Review struct {
	ID      uint   `json:"id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Favorite merepresentasikan relasi user-restoran.
type Favorite struct {
	ID         uint       `json:"id"`
	Restaurant Restaurant `json:"restaurant"`
}
