package migrations

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const migrationCollection = "_migrations"

type Migration struct {
	Version     string
	Description string
	Up          func(context.Context, *mongo.Database) error
}

type MigrationStatus struct {
	Version   string    `bson:"version"`
	AppliedAt time.Time `bson:"applied_at"`
	Success   bool      `bson:"success"`
}

type MigrationManager struct {
	db         *mongo.Database
	migrations []Migration
}

func NewMigrationManager(db *mongo.Database) *MigrationManager {
	return &MigrationManager{
		db:         db,
		migrations: []Migration{},
	}
}

func (mm *MigrationManager) AddMigration(migration Migration) *MigrationManager {
	mm.migrations = append(mm.migrations, migration)
	return mm
}

func (mm *MigrationManager) isApplied(ctx context.Context, version string) (bool, error) {
	var status MigrationStatus
	err := mm.db.Collection(migrationCollection).
		FindOne(ctx, bson.M{"version": version, "success": true}).
		Decode(&status)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// Run applies every unapplied migration in version order. Each version is
// recorded so a rerun is a no-op.
func (mm *MigrationManager) Run(ctx context.Context) error {
	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
	}

	sort.Slice(mm.migrations, func(i, j int) bool {
		return mm.migrations[i].Version < mm.migrations[j].Version
	})

	coll := mm.db.Collection(migrationCollection)

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "version", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create migration index: %w", err)
	}

	for _, migration := range mm.migrations {
		applied, err := mm.isApplied(ctx, migration.Version)
		if err != nil {
			return fmt.Errorf("failed to check migration status for %s: %w", migration.Version, err)
		}

		if applied {
			log.Printf("Migration %s already applied, skipping", migration.Version)
			continue
		}

		log.Printf("Running migration %s: %s", migration.Version, migration.Description)

		start := time.Now()
		err = migration.Up(ctx, mm.db)
		duration := time.Since(start)

		status := MigrationStatus{
			Version:   migration.Version,
			AppliedAt: time.Now(),
			Success:   err == nil,
		}

		if err != nil {
			log.Printf("Migration %s failed after %v: %v", migration.Version, duration, err)
			if _, saveErr := coll.InsertOne(ctx, status); saveErr != nil {
				log.Printf("Failed to save migration status: %v", saveErr)
			}
			return fmt.Errorf("migration %s failed: %w", migration.Version, err)
		}

		if _, err = coll.InsertOne(ctx, status); err != nil {
			return fmt.Errorf("failed to save migration status: %w", err)
		}

		log.Printf("Migration %s completed successfully in %v", migration.Version, duration)
	}

	return nil
}
