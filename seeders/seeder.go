package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDictionaries vult de basistabellen: materiaaltypes met hun
// keuringsintervallen en een paar werven.
func SeedDictionaries(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("Start naslagtabellen vullen...")

	if err := seedMaterialTypes(ctx, db); err != nil {
		log.Fatalf("materiaaltypes vullen mislukt: %v", err)
	}
	if err := seedWerven(ctx, db); err != nil {
		log.Fatalf("werven vullen mislukt: %v", err)
	}
	log.Println("Naslagtabellen gevuld.")
}

// SeedAdmin maakt het beheerdersaccount aan als het nog niet bestaat.
// E-mailadres en wachtwoord komen uit ADMIN_EMAIL en ADMIN_PASSWORD.
func SeedAdmin(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("Start beheerder aanmaken...")

	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("beheerder aanmaken mislukt: %v", err)
	}
	log.Println("Beheerder aangemaakt.")
}
