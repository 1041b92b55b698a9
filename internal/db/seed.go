package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedCategories are the feed categories filled by Seed.
var SeedCategories = []string{"news", "tech", "sports"}

// Seed inserts demo feed items into the database. perCategory items are
// created for every category in SeedCategories; existing positions are kept.
func Seed(ctx context.Context, db *pgxpool.Pool, perCategory int) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, category := range SeedCategories {
		for pos := 0; pos < perCategory; pos++ {
			title := fmt.Sprintf("%s story #%d", category, pos+1)
			body := fmt.Sprintf("Read time %d min", 2+r.Intn(8))
			imageURL := fmt.Sprintf("https://example.com/%s/%d.jpg", category, pos+1)
			created := time.Now().Add(-time.Duration(perCategory-pos) * time.Hour)
			_, err := db.Exec(ctx, `INSERT INTO feed_items
    (category, title, body, image_url, position, created_at)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT (category, position) DO NOTHING`,
				category, title, body, imageURL, pos, created)
			if err != nil {
				return fmt.Errorf("seed %s/%d: %w", category, pos, err)
			}
		}
	}
	return nil
}
