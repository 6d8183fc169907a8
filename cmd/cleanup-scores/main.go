// Command cleanup-scores deletes stale match scores that have not been
// recalculated for a while. Stale rows are never served, so old ones are
// just dead weight.
//
// Usage:
//
//	cleanup-scores [-older-than 720h]
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	olderThan := flag.Duration("older-than", 30*24*time.Hour, "delete stale scores older than this")
	flag.Parse()

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	cutoff := time.Now().Add(-*olderThan)

	tag, err := pool.Exec(ctx,
		"DELETE FROM match_scores WHERE is_stale AND calculated_at < $1",
		cutoff,
	)
	if err != nil {
		log.Fatalf("cleanup scores: %v", err)
	}

	fmt.Printf("Deleted %d stale match scores older than %s.\n", tag.RowsAffected(), olderThan)
}
