// Command seed resets the database and fills it with sample data: one
// admin profile, three products, and orders spread over the past 14 days.
package main

import (
	"log"
	"time"

	"github.com/farbodforooghi-ux/istanbul-gasht-backend/internal/model"
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/pkg/database"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	db := database.ConnectDB()

	if err := db.Migrator().DropTable(&model.Order{}, &model.ActivityLog{}, &model.Product{}, &model.AdminUser{}); err != nil {
		log.Fatal("Failed to drop tables: ", err)
	}
	if err := db.AutoMigrate(&model.Product{}, &model.AdminUser{}, &model.Order{}, &model.ActivityLog{}); err != nil {
		log.Fatal("Failed to migrate: ", err)
	}

	// Admin profile
	admin := model.AdminUser{
		ID:    1,
		Name:  "Istanbul Gasht Admin",
		Email: "admin@istanbulgasht.com",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin: ", err)
	}

	// Sample products
	products := []model.Product{
		{
			Name:        "Classic Istanbul T-Shirt",
			Price:       decimal.NewFromFloat(29.99),
			Category:    "T-Shirts",
			Stock:       50,
			Description: "Simple white tee with a minimal Istanbul skyline print.",
		},
		{
			Name:        "Bosporus Hoodie",
			Price:       decimal.NewFromFloat(59.99),
			Category:    "Hoodies",
			Stock:       20,
			Description: "Cozy hoodie inspired by Bosporus nights.",
		},
		{
			Name:        "Grand Bazaar Scarf",
			Price:       decimal.NewFromFloat(19.99),
			Category:    "Accessories",
			Stock:       100,
			Description: "Light scarf with patterns inspired by the Grand Bazaar.",
		},
	}
	if err := db.Create(&products).Error; err != nil {
		log.Fatal("Failed to create products: ", err)
	}

	// Orders for the past 14 days
	today := time.Now()
	for i := 0; i < 14; i++ {
		day := today.AddDate(0, 0, -i)

		for j := 0; j < i%3; j++ {
			product := products[j%len(products)]
			quantity := j + 1
			order := model.Order{
				ProductID:   &product.ID,
				Quantity:    quantity,
				TotalAmount: product.Price.Mul(decimal.NewFromInt(int64(quantity))),
				OrderDate:   day,
			}
			if err := db.Create(&order).Error; err != nil {
				log.Fatal("Failed to create order: ", err)
			}
		}
	}

	entry := model.ActivityLog{
		ActionType:  model.ActionSystemInit,
		Description: "Database initialized with sample data.",
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Fatal("Failed to create activity log: ", err)
	}

	log.Println("Database initialized with sample data.")
}
