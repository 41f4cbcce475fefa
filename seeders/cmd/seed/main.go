package main

import (
	"flag"
	"log"

	"materieelbeheer/pkg/config"
	"materieelbeheer/pkg/database/postgresql"
	"materieelbeheer/seeders"
)

func main() {
	runDictionaries := flag.Bool("dictionaries", false, "vul de naslagtabellen (materiaaltypes, werven)")
	runAdmin := flag.Bool("admin", false, "maak het beheerdersaccount aan")
	runAll := flag.Bool("all", false, "voer alle seeders uit")
	flag.Parse()

	if !*runDictionaries && !*runAdmin && !*runAll {
		log.Println("geen seeder gekozen; beschikbare vlaggen:")
		flag.PrintDefaults()
		return
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("configuratie laden mislukt: %v", err)
	}

	if err := postgresql.Migrate(cfg.Postgres.DSN); err != nil {
		log.Fatalf("migraties uitvoeren mislukt: %v", err)
	}

	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	if *runAll || *runDictionaries {
		seeders.SeedDictionaries(db)
	}
	if *runAll || *runAdmin {
		seeders.SeedAdmin(db)
	}

	log.Println("seeders afgerond")
}
