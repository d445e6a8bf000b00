package main

import (
	"crypto/sha1"
	"encoding/hex"
	"log"

	"requisiciones/internal/app/ds"
	"requisiciones/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func hashPassword(s string) string {
	h := sha1.New()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// Usuarios demo del flujo: mantenimiento1/2 son autorizadores y
// mantenimiento3 es solicitante restringido.
var demoUsers = []ds.User{
	{Username: "mantenimiento1", Password: hashPassword("m1"), Role: "Mantenimiento"},
	{Username: "mantenimiento2", Password: hashPassword("m2"), Role: "Mantenimiento"},
	{Username: "mantenimiento3", Password: hashPassword("m3"), Role: "Mantenimiento"},
	{Username: "almacen", Password: hashPassword("a"), Role: "Almacén"},
	{Username: "compras1", Password: hashPassword("c1"), Role: "Compras"},
	{Username: "compras2", Password: hashPassword("c2"), Role: "Compras"},
}

func main() {
	// Variables de entorno desde .env
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database successfully")

	err = db.AutoMigrate(
		&ds.User{},
		&ds.Requisition{},
		&ds.Material{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migration completed successfully")

	// Sembrar usuarios demo solo si la tabla está vacía
	var count int64
	if err := db.Model(&ds.User{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to count users: %v", err)
	}
	if count > 0 {
		log.Println("Users already seeded, skipping")
		return
	}

	if err := db.Create(&demoUsers).Error; err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Seeded %d demo users", len(demoUsers))
}
