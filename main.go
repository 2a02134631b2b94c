package main

import (
	"log"

	"github.com/esraghu/milk-delivery-app/cmd/config"
	migration "github.com/esraghu/milk-delivery-app/cmd/database/migrate"
	"github.com/esraghu/milk-delivery-app/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to set up app: %v", err)
	}

	log.Fatal(app.Listen(":8000"))
}
