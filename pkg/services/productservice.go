package services

import (
	"context"
	"log"
	"time"

	"blackcart-io/api/internal/common"
	"blackcart-io/api/pkg/models"
	"blackcart-io/api/pkg/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type productService struct {
	productCollection *mongo.Collection
	sellerCollection  *mongo.Collection
}

func NewProductService() ProductService {
	return &productService{
		productCollection: common.ProductCollection,
		sellerCollection:  common.SellerCollection,
	}
}

func (s *productService) CreateProduct(ctx context.Context, sellerID primitive.ObjectID, req CreateProductRequest) (*models.Product, error) {
	now := time.Now()

	var imageURL, imagePublicID string
	if req.Image != nil {
		uploadRes, err := util.ImageUploadHelper(req.Image)
		if err != nil {
			return nil, err
		}
		imageURL = uploadRes.SecureURL
		imagePublicID = uploadRes.PublicID
	}

	product := models.Product{
		ID:            primitive.NewObjectID(),
		SellerID:      sellerID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Quantity:      req.Quantity,
		Category:      req.Category,
		ImageURL:      imageURL,
		ImagePublicID: imagePublicID,
		Status:        models.ProductStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := s.productCollection.InsertOne(ctx, product)
	if err != nil {
		// The image made it to the blob host but the product didn't land;
		// drop the orphan so the two stores stay consistent.
		if imagePublicID != "" {
			if _, destroyErr := util.DestroyMedia(imagePublicID); destroyErr != nil {
				log.Printf("failed to clean up orphaned product image %s: %v", imagePublicID, destroyErr)
			}
		}
		return nil, err
	}

	_, err = s.sellerCollection.UpdateOne(ctx,
		bson.M{"_id": sellerID},
		bson.M{"$inc": bson.M{"total_products": 1}})
	if err != nil {
		log.Printf("failed to bump total_products for seller %s: %v", sellerID.Hex(), err)
	}

	return &product, nil
}

func (s *productService) getOwnedProduct(ctx context.Context, requesterID, productID primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := s.productCollection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if product.SellerID != requesterID {
		return nil, ErrForbidden
	}

	return &product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, requesterID, productID primitive.ObjectID, patch models.UpdateProductRequest) (*models.Product, error) {
	if _, err := s.getOwnedProduct(ctx, requesterID, productID); err != nil {
		return nil, err
	}

	update := bson.M{"updated_at": time.Now()}
	if patch.Name != nil {
		update["name"] = *patch.Name
	}
	if patch.Description != nil {
		update["description"] = *patch.Description
	}
	if patch.Price != nil {
		update["price"] = *patch.Price
	}
	if patch.Quantity != nil {
		update["quantity"] = *patch.Quantity
	}
	if patch.Category != nil {
		update["category"] = *patch.Category
	}
	if patch.Status != nil {
		update["status"] = *patch.Status
	}

	var product models.Product
	err := s.productCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": productID, "seller_id": requesterID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, requesterID, productID primitive.ObjectID) error {
	product, err := s.getOwnedProduct(ctx, requesterID, productID)
	if err != nil {
		return err
	}

	result, err := s.productCollection.DeleteOne(ctx, bson.M{"_id": productID, "seller_id": requesterID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	if product.ImagePublicID != "" {
		if _, err := util.DestroyMedia(product.ImagePublicID); err != nil {
			log.Printf("failed to delete image for product %s: %v", productID.Hex(), err)
		}
	}

	_, err = s.sellerCollection.UpdateOne(ctx,
		bson.M{"_id": requesterID},
		bson.M{"$inc": bson.M{"total_products": -1}})
	if err != nil {
		log.Printf("failed to decrement total_products for seller %s: %v", requesterID.Hex(), err)
	}

	return nil
}

func (s *productService) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := s.productCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &product, nil
}

func (s *productService) ListSellerProducts(ctx context.Context, sellerID primitive.ObjectID) ([]models.Product, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.productCollection.Find(ctx, bson.M{"seller_id": sellerID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// publicPipeline builds the storefront aggregation: active products newest
// first with the owning seller's display profile joined in.
func publicPipeline(match bson.M, pagination *util.PaginationArgs) mongo.Pipeline {
	match["status"] = models.ProductStatusActive

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
	}

	if pagination != nil {
		pipeline = append(pipeline,
			bson.D{{Key: "$skip", Value: pagination.Skip}},
			bson.D{{Key: "$limit", Value: pagination.Limit}},
		)
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "Seller",
			"localField":   "seller_id",
			"foreignField": "_id",
			"as":           "seller",
		}}},
		bson.D{{Key: "$unwind", Value: "$seller"}},
	)

	return pipeline
}

func (s *productService) ListPublicProducts(ctx context.Context, pagination util.PaginationArgs) ([]models.ProductWithSeller, int64, error) {
	cursor, err := s.productCollection.Aggregate(ctx, publicPipeline(bson.M{}, &pagination))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var products []models.ProductWithSeller
	if err = cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}

	count, err := s.productCollection.CountDocuments(ctx, bson.M{"status": models.ProductStatusActive})
	if err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

func (s *productService) ListPublicProductsBySeller(ctx context.Context, sellerID primitive.ObjectID) ([]models.ProductWithSeller, error) {
	cursor, err := s.productCollection.Aggregate(ctx, publicPipeline(bson.M{"seller_id": sellerID}, nil))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.ProductWithSeller
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (s *productService) ListPublicProductsByStoreSlug(ctx context.Context, storeSlug string) ([]models.ProductWithSeller, error) {
	var seller models.Seller
	err := s.sellerCollection.FindOne(ctx, bson.M{"store_slug": storeSlug}).Decode(&seller)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.ListPublicProductsBySeller(ctx, seller.ID)
}
