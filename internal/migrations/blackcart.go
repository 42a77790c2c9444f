package migrations

import (
	"context"
	"log"
	"time"

	"blackcart-io/api/internal/validators"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BuildIndexManager registers the marketplace's index set: the uniqueness
// guarantees (seller email, store slug, order reference) plus the lookup
// paths the listings hit.
func BuildIndexManager(db *mongo.Database, opts ...*Options) *Manager {
	m := NewManager(db, opts...)

	m.AddIndex("Seller", mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("seller_email_unique"),
	})
	// Sparse so pre-slug legacy accounts don't collide on the missing field.
	m.AddIndex("Seller", mongo.IndexModel{
		Keys:    bson.D{{Key: "store_slug", Value: 1}},
		Options: options.Index().SetUnique(true).SetSparse(true).SetName("seller_store_slug_unique"),
	})
	m.AddIndex("Seller", mongo.IndexModel{
		Keys:    bson.D{{Key: "is_verified", Value: 1}},
		Options: options.Index().SetName("seller_is_verified"),
	})

	m.AddCompoundIndex("Product", []string{"seller_id", "status"},
		options.Index().SetName("product_seller_status"))
	m.AddCompoundIndex("Product", []string{"status", "created_at"},
		options.Index().SetName("product_status_created"))

	m.AddIndex("Order", mongo.IndexModel{
		Keys:    bson.D{{Key: "order_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("order_reference_unique"),
	})
	m.AddCompoundIndex("Order", []string{"seller_id", "created_at"},
		options.Index().SetName("order_seller_created"))

	return m
}

// BuildMigrationManager registers the data migrations.
func BuildMigrationManager(db *mongo.Database) *MigrationManager {
	mm := NewMigrationManager(db)

	mm.AddMigration(Migration{
		Version:     "001",
		Description: "backfill store slugs for sellers created before slug generation",
		Up:          backfillStoreSlugs,
	})

	return mm
}

// backfillStoreSlugs assigns a slug to every seller missing one, derived
// from the store name and disambiguated with numeric suffixes.
func backfillStoreSlugs(ctx context.Context, db *mongo.Database) error {
	sellers := db.Collection("Seller")

	cursor, err := sellers.Find(ctx, bson.M{"$or": []bson.M{
		{"store_slug": bson.M{"$exists": false}},
		{"store_slug": ""},
	}})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	slugExists := func(candidate string) (bool, error) {
		count, err := sellers.CountDocuments(ctx, bson.M{"store_slug": candidate})
		if err != nil {
			return false, err
		}
		return count > 0, nil
	}

	updated := 0
	for cursor.Next(ctx) {
		var seller struct {
			ID        primitive.ObjectID `bson:"_id"`
			StoreName string             `bson:"store_name"`
			FullName  string             `bson:"full_name"`
		}
		if err := cursor.Decode(&seller); err != nil {
			return err
		}

		// Store name first, then the seller's name, then a synthetic slug
		// from the document id so the unique index can still land.
		base := validators.MakeStoreSlug(seller.StoreName)
		if base == "" {
			base = validators.MakeStoreSlug(seller.FullName)
		}
		if base == "" {
			hex := seller.ID.Hex()
			base = "seller-" + hex[len(hex)-6:]
		}

		storeSlug, err := validators.EnsureUniqueSlug(base, slugExists)
		if err != nil {
			return err
		}

		_, err = sellers.UpdateOne(ctx,
			bson.M{"_id": seller.ID},
			bson.M{"$set": bson.M{"store_slug": storeSlug, "updated_at": time.Now()}})
		if err != nil {
			return err
		}
		updated++
	}
	if err := cursor.Err(); err != nil {
		return err
	}

	log.Printf("Backfilled store slugs for %d sellers", updated)
	return nil
}
