package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	BasePrice   int64  `json:"basePrice"` // centavos
	PhotoURL    string `json:"photoUrl"`
	Available   bool   `json:"available"` // CreateProduct defaults this to true

	CategoryID *uint     `json:"categoryId"`
	Category   *Category `json:"-"` // preload only when the catalog needs the name

	OrderItems []OrderItem `json:"-"`
}
