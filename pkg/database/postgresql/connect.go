package postgresql

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectDB(dsn string) *pgxpool.Pool {
	dbpool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("kon geen connectiepool naar de database maken: %v", err)
	}

	if err := dbpool.Ping(context.Background()); err != nil {
		log.Fatalf("kon de database niet pingen: %v", err)
	}

	log.Println("verbonden met PostgreSQL")
	return dbpool
}
