package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/campuscanteen/canteen-app/config"
	"github.com/campuscanteen/canteen-app/middlewares"
	"github.com/campuscanteen/canteen-app/models"
	"github.com/campuscanteen/canteen-app/router"
	"github.com/campuscanteen/canteen-app/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	cfg := config.Load()
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	autoMigrate(db)
	seedMenu(db)

	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db, cfg.TaxRateBP)
	r.Use(rateLimiter.RateLimit())
	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Notification{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}

// seedMenu fills an empty catalog with a starter menu so a fresh install
// has something to order.
func seedMenu(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	items := []models.MenuItem{
		{Name: "Masala Dosa", Description: "Crispy dosa with potato filling", Price: 80, Category: "breakfast", Available: true},
		{Name: "Idli Sambar", Description: "Steamed idlis with sambar and chutney", Price: 50, Category: "breakfast", Available: true},
		{Name: "Veg Biryani", Description: "Fragrant rice with mixed vegetables", Price: 120, Category: "lunch", Available: true},
		{Name: "Paneer Butter Masala", Description: "Paneer in rich tomato gravy", Price: 150, Category: "dinner", Available: true},
		{Name: "Samosa", Description: "Fried pastry with spiced potato", Price: 20, Category: "snacks", Available: true},
		{Name: "Masala Chai", Description: "Spiced milk tea", Price: 15, Category: "beverages", Available: true},
		{Name: "Filter Coffee", Description: "South Indian filter coffee", Price: 25, Category: "beverages", Available: true},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			utils.ErrorLogger.Printf("Failed to seed menu item %q: %v", items[i].Name, err)
		}
	}
	utils.InfoLogger.Printf("Seeded %d menu items", len(items))
}
