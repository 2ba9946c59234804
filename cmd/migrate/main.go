package main

import (
	"flag"
	"log"
	"os"

	"esuka/config"
	"esuka/models"
)

func main() {
	seed := flag.Bool("seed", false, "insert default bidang, klasifikasi and the first admin")
	flag.Parse()

	db := config.ConnectDB()
	if err := db.AutoMigrate(models.All()...); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("✅ Migration completed")

	if !*seed {
		return
	}
	admin := seedAdmin{
		Email:    os.Getenv("SEED_ADMIN_EMAIL"),
		Password: os.Getenv("SEED_ADMIN_PASSWORD"),
		FullName: os.Getenv("SEED_ADMIN_NAME"),
	}
	if err := runSeed(db, admin); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	log.Println("✅ Seed completed")
}
