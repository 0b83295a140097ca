package main

import (
	"context"
	"flag"
	"log"
	"os"

	"movie-billing/internal/config"
	"movie-billing/internal/db"
	"movie-billing/internal/importer"
	movierepo "movie-billing/internal/repository/movie"
)

func main() {
	path := flag.String("file", "", "path to a catalog CSV export")
	flag.Parse()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if *path == "" {
		logger.Fatal("missing -file")
	}

	f, err := os.Open(*path)
	if err != nil {
		logger.Fatalf("open %s: %v", *path, err)
	}
	defer f.Close()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	imp := importer.NewCSVImporter(f, movierepo.NewPostgres(pool))
	n, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import after %d movies: %v", n, err)
	}

	logger.Printf("imported %d movies", n)
}
