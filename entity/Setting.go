package entity

import (
	"gorm.io/gorm"
)

// Setting is a key/value system configuration record (ex: NOME_PIZZARIA).
type Setting struct {
	gorm.Model
	Key         string `gorm:"uniqueIndex" json:"key"`
	Value       string `json:"value"`
	Description string `json:"description"`
}
