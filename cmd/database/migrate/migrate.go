package migration

import (
	"fmt"
	"log"

	"github.com/esraghu/milk-delivery-app/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Product{}); err != nil {
		log.Fatalf("Error migrating product database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Subscription{}, &entities.SubscriptionItem{}); err != nil {
		log.Fatalf("Error migrating subscription database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Order{}, &entities.OrderItem{}); err != nil {
		log.Fatalf("Error migrating order database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Vacation{}); err != nil {
		log.Fatalf("Error migrating vacation database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Cancellation{}); err != nil {
		log.Fatalf("Error migrating cancellation database: %v", err)
		return err
	}

	if err := seedProducts(db); err != nil {
		log.Fatalf("Error seeding products: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

func seedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []entities.Product{
		{Name: "Milk", Price: 25.0},
		{Name: "Curd", Price: 15.0},
		{Name: "Butter", Price: 45.0},
		{Name: "Cheese", Price: 80.0},
	}
	return db.Create(&products).Error
}
