package configs

import (
	"github.com/RubensDuarte2025/Julius-rmd/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(dsn string) {
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.Category{}, &entity.Product{},
		&entity.Table{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Payment{},
		&entity.KitchenTicket{}, &entity.KitchenTicketItem{},
		&entity.Setting{},
	)
}
