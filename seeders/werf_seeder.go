package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

var werfSeeds = []struct {
	name    string
	address string
}{
	{"Magazijn", "Industrieweg 12, Gent"},
	{"Werf Noord", "Havenlaan 3, Antwerpen"},
	{"Werf Zuid", "Stationsstraat 45, Kortrijk"},
}

func seedWerven(ctx context.Context, db *pgxpool.Pool) error {
	for _, seed := range werfSeeds {
		var exists bool
		err := db.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM werven WHERE name = $1 AND is_deleted = FALSE)", seed.name).Scan(&exists)
		if err != nil {
			return fmt.Errorf("bestaanscheck voor werf %q mislukt: %w", seed.name, err)
		}
		if exists {
			continue
		}

		_, err = db.Exec(ctx,
			"INSERT INTO werven (name, address) VALUES ($1, $2)", seed.name, seed.address)
		if err != nil {
			return fmt.Errorf("werf %q invoegen mislukt: %w", seed.name, err)
		}
		log.Printf("  - werf %q aangemaakt", seed.name)
	}
	return nil
}
