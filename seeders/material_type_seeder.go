package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

type materialTypeSeed struct {
	name         string
	validityDays *int
}

func days(n int) *int { return &n }

// Keuringsintervallen per type. Types zonder interval verlopen nooit.
var materialTypeSeeds = []materialTypeSeed{
	{"Valbeveiliging", days(365)},
	{"Hijsmateriaal", days(365)},
	{"Elektrisch gereedschap", days(365)},
	{"Ladders en trappen", days(365)},
	{"Brandblusser", days(365)},
	{"Generator", days(180)},
	{"Compressor", days(180)},
	{"Handgereedschap", nil},
	{"Overig", nil},
}

func seedMaterialTypes(ctx context.Context, db *pgxpool.Pool) error {
	for _, seed := range materialTypeSeeds {
		var exists bool
		err := db.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM material_types WHERE name = $1)", seed.name).Scan(&exists)
		if err != nil {
			return fmt.Errorf("bestaanscheck voor type %q mislukt: %w", seed.name, err)
		}
		if exists {
			continue
		}

		_, err = db.Exec(ctx,
			"INSERT INTO material_types (name, inspection_validity_days) VALUES ($1, $2)",
			seed.name, seed.validityDays)
		if err != nil {
			return fmt.Errorf("type %q invoegen mislukt: %w", seed.name, err)
		}
		log.Printf("  - materiaaltype %q aangemaakt", seed.name)
	}
	return nil
}
