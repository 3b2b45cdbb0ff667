package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/tavor118/notes/internal/model"
	"github.com/tavor118/notes/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM migration...")

	models := []interface{}{
		&model.User{},
		&model.Color{},
		&model.Label{},
		&model.Category{},
		&model.Attachment{},
		&model.Note{},
		// Explicit join tables
		&model.NoteCategory{},
		&model.NoteLabel{},
		&model.NoteAttachment{},
		&model.NoteDelegation{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("Success: database migration completed.")
}
