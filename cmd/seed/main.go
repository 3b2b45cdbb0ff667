package main

import (
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tavor118/notes/internal/model"
	"github.com/tavor118/notes/pkg/database"
)

// Seeds a default color palette plus a demo account. Safe to rerun:
// rows that already exist are left untouched.
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

	color.Cyan("Seeding colors...")
	seedColors(db)

	color.Cyan("Seeding demo user...")
	seedDemoUser(db)

	color.Green("Done.")
}

func seedColors(db *gorm.DB) {
	palette := []string{
		"#FFFFFF",
		"#F28B82",
		"#FBBC04",
		"#FFF475",
		"#CCFF90",
		"#A7FFEB",
		"#CBF0F8",
		"#AECBFA",
		"#D7AEFB",
		"#FDCFE8",
	}

	for _, hex := range palette {
		var existing model.Color
		err := db.Where("color = ?", hex).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			color.Red("Failed to look up color %s: %v", hex, err)
			continue
		}
		if err := db.Create(&model.Color{Color: hex}).Error; err != nil {
			color.Red("Failed to create color %s: %v", hex, err)
		}
	}
}

func seedDemoUser(db *gorm.DB) {
	var existing model.User
	err := db.Where("username = ?", "demo").First(&existing).Error
	if err == nil {
		color.Yellow("Demo user already exists, skipping")
		return
	}
	if err != gorm.ErrRecordNotFound {
		color.Red("Failed to look up demo user: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo12345"), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Failed to hash demo password: %v", err)
		return
	}

	user := model.User{
		Username:     "demo",
		Email:        "demo@example.com",
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := db.Create(&user).Error; err != nil {
		color.Red("Failed to create demo user: %v", err)
	}
}
