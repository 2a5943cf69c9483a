package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"fullwoodjoz/visitus/internal/config"
	"fullwoodjoz/visitus/internal/constants"
)

func main() {
	tenant := flag.String("tenant", "", "tenant id the key is scoped to")
	flag.Parse()

	if *tenant == "" {
		log.Fatal("usage: api_key_gen -tenant <tenant-id>")
	}

	dsn, err := config.PostgresDSN()
	if err != nil {
		log.Fatalf("postgres config: %v", err)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	var id string
	key := uuid.New().String()
	if err := db.QueryRow(constants.InsertApiKey, key, *tenant).Scan(&id); err != nil {
		log.Fatalf("insert api key: %v", err)
	}

	fmt.Println("New API Key:", id)
}
