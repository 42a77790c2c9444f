package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"blackcart-io/api/internal/migrations"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	var (
		action      = flag.String("action", "all", "Action: indexes, migrate, all")
		uri         = flag.String("uri", "", "MongoDB URI (defaults to env DATABASE_URL)")
		dbName      = flag.String("db", "blackcart", "Database name")
		timeout     = flag.Duration("timeout", 60*time.Second, "Operation timeout")
		continueErr = flag.Bool("continue-on-error", true, "Continue on error")
		skipExists  = flag.Bool("skip-if-exists", true, "Skip existing indexes")
	)
	flag.Parse()

	mongoURI := *uri
	if mongoURI == "" {
		mongoURI = os.Getenv("DATABASE_URL")
		if mongoURI == "" {
			mongoURI = "mongodb://localhost:27017"
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer func() {
		if err = client.Disconnect(ctx); err != nil {
			log.Fatal("Failed to disconnect:", err)
		}
	}()

	if err = client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}

	db := client.Database(*dbName)

	if *action == "indexes" || *action == "all" {
		fmt.Printf("Creating indexes in database: %s\n", *dbName)

		manager := migrations.BuildIndexManager(db, &migrations.Options{
			Timeout:         *timeout,
			ContinueOnError: *continueErr,
			SkipIfExists:    *skipExists,
		})

		result, err := manager.Create(context.Background())
		if result != nil {
			fmt.Printf("Indexes: %d created/skipped, %d failed in %v\n",
				result.SuccessCount, result.FailedCount, result.Duration)
		}
		if err != nil {
			log.Fatal("Index creation failed:", err)
		}
	}

	if *action == "migrate" || *action == "all" {
		fmt.Printf("Running data migrations in database: %s\n", *dbName)

		mm := migrations.BuildMigrationManager(db)
		if err := mm.Run(context.Background()); err != nil {
			log.Fatal("Migrations failed:", err)
		}
	}
}
