package configs

import (
	"log"

	"github.com/RubensDuarte2025/Julius-rmd/entity"
)

// Seed initial settings the admin screens expect.
func SeedSettings() error {
	db := DB()

	defaults := []entity.Setting{
		{Key: "NOME_PIZZARIA", Value: "Pizzaria Julius", Description: "Nome exibido nos recibos e no painel"},
		{Key: "TELEFONE_CONTATO", Value: "", Description: "Telefone de contato da casa"},
	}
	for _, s := range defaults {
		if err := db.FirstOrCreate(&entity.Setting{}, entity.Setting{Key: s.Key}).Error; err != nil {
			return err
		}
		if err := db.Model(&entity.Setting{}).
			Where("key = ? AND value = ''", s.Key).
			Updates(map[string]any{"value": s.Value, "description": s.Description}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedDemo creates a starter floor plan and menu for a fresh database.
func SeedDemo() error {
	db := DB()

	var count int64
	db.Model(&entity.Table{}).Count(&count)
	if count > 0 {
		log.Println("tables already seeded, skipping demo data")
		return nil
	}

	for _, label := range []string{"01", "02", "03", "04", "Varanda 1", "Varanda 2"} {
		if err := db.Create(&entity.Table{Label: label, Capacity: 4, Status: entity.TableFree}).Error; err != nil {
			return err
		}
	}

	pizzas := entity.Category{Name: "Pizzas", Description: "Pizzas tradicionais"}
	bebidas := entity.Category{Name: "Bebidas", Description: "Bebidas geladas"}
	if err := db.Create(&pizzas).Error; err != nil {
		return err
	}
	if err := db.Create(&bebidas).Error; err != nil {
		return err
	}

	products := []entity.Product{
		{Name: "Pizza Margherita", BasePrice: 4500, Available: true, CategoryID: &pizzas.ID},
		{Name: "Pizza Calabresa", BasePrice: 4800, Available: true, CategoryID: &pizzas.ID},
		{Name: "Refrigerante Lata", BasePrice: 700, Available: true, CategoryID: &bebidas.ID},
		{Name: "Suco Natural", BasePrice: 1000, Available: true, CategoryID: &bebidas.ID},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			return err
		}
	}
	log.Println("demo floor plan and menu seeded")
	return nil
}
