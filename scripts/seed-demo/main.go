package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/craftally/studio/internal/auth"
	"github.com/craftally/studio/storage"
	"github.com/craftally/studio/storage/db"
)

const (
	numArtisans           = 8
	numProductsPerArtisan = 4
)

var craftTypes = []string{
	"Pottery", "Weaving", "Woodwork", "Leathercraft",
	"Glassblowing", "Jewelry", "Basketry", "Calligraphy",
}

var materials = []string{
	"stoneware clay and ash glaze",
	"hand-dyed wool and cotton",
	"reclaimed oak and walnut",
	"vegetable-tanned leather",
	"recycled glass",
	"sterling silver and river stones",
	"willow and rattan",
	"handmade paper and iron-gall ink",
}

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./db/craftally.db"
	}

	store, err := storage.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	for i := 0; i < numArtisans; i++ {
		craft := craftTypes[i%len(craftTypes)]

		passwordHash, err := auth.HashPassword("demo-password")
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		artisan, err := store.Queries.CreateArtisan(ctx, db.CreateArtisanParams{
			Username:     gofakeit.Username(),
			Email:        gofakeit.Email(),
			PasswordHash: passwordHash,
			FullName:     sql.NullString{String: gofakeit.Name(), Valid: true},
			CraftType:    sql.NullString{String: craft, Valid: true},
			Location:     sql.NullString{String: gofakeit.City() + ", " + gofakeit.StateAbr(), Valid: true},
			Bio:          sql.NullString{String: gofakeit.Sentence(18), Valid: true},
			Materials:    sql.NullString{String: materials[i%len(materials)], Valid: true},
		})
		if err != nil {
			log.Fatalf("Failed to create artisan: %v", err)
		}

		for j := 0; j < numProductsPerArtisan; j++ {
			_, err := store.Queries.CreateProduct(ctx, db.CreateProductParams{
				ArtisanID:   artisan.ID,
				Name:        fmt.Sprintf("%s %s", gofakeit.AdjectiveDescriptive(), gofakeit.NounConcrete()),
				Description: sql.NullString{String: gofakeit.Sentence(12), Valid: true},
				Price:       sql.NullFloat64{Float64: 15 + rand.Float64()*185, Valid: true},
			})
			if err != nil {
				log.Fatalf("Failed to create product: %v", err)
			}
		}

		log.Printf("Seeded artisan %s (%s) with %d products", artisan.Username, craft, numProductsPerArtisan)
	}

	log.Printf("Done: %d artisans seeded into %s", numArtisans, dbPath)
}
