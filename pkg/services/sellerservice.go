package services

import (
	"context"
	"log"
	"strings"
	"time"

	"blackcart-io/api/email"
	"blackcart-io/api/internal/auth"
	"blackcart-io/api/internal/common"
	"blackcart-io/api/internal/validators"
	"blackcart-io/api/pkg/models"
	"blackcart-io/api/pkg/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type sellerService struct {
	sellerCollection *mongo.Collection
	emailPool        *email.EmailWorkerPool
}

func NewSellerService(emailPool *email.EmailWorkerPool) SellerService {
	return &sellerService{
		sellerCollection: common.SellerCollection,
		emailPool:        emailPool,
	}
}

// slugTaken reports whether any seller other than excludeId already owns
// the candidate slug.
func (s *sellerService) slugTaken(ctx context.Context, candidate string, excludeId primitive.ObjectID) (bool, error) {
	filter := bson.M{"store_slug": candidate}
	if excludeId != primitive.NilObjectID {
		filter["_id"] = bson.M{"$ne": excludeId}
	}
	count, err := s.sellerCollection.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *sellerService) uniqueStoreSlug(ctx context.Context, storeName string, excludeId primitive.ObjectID) (string, error) {
	base := validators.MakeStoreSlug(storeName)
	if base == "" {
		return "", errors.New("store name yields an empty slug")
	}

	return validators.EnsureUniqueSlug(base, func(candidate string) (bool, error) {
		return s.slugTaken(ctx, candidate, excludeId)
	})
}

func (s *sellerService) Register(ctx context.Context, req models.RegisterSellerRequest) (*models.Seller, error) {
	now := time.Now()

	if err := validators.ValidateEmailAddress(req.Email); err != nil {
		return nil, err
	}
	if err := validators.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	sellerEmail := strings.ToLower(strings.TrimSpace(req.Email))

	count, err := s.sellerCollection.CountDocuments(ctx, bson.M{"email": sellerEmail})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	storeSlug, err := s.uniqueStoreSlug(ctx, req.StoreName, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := validators.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	address := req.Address
	if address.Country == "" {
		address.Country = "USA"
	}

	seller := models.Seller{
		ID:           primitive.NewObjectID(),
		FullName:     req.FullName,
		Email:        sellerEmail,
		Password:     hashedPassword,
		Phone:        req.Phone,
		StoreName:    req.StoreName,
		StoreSlug:    storeSlug,
		BusinessType: req.BusinessType,
		Address:      address,
		TaxID:        req.TaxID,
		BankAccount:  req.BankAccount,
		IDDocument: models.IDDocument{
			FileName:   req.IDDocument,
			UploadDate: now,
			Verified:   false,
		},
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = s.sellerCollection.InsertOne(ctx, seller)
	if err != nil {
		writeException, ok := err.(mongo.WriteException)
		if ok {
			for _, writeError := range writeException.WriteErrors {
				if writeError.Code == common.MONGO_DUPLICATE_KEY_CODE {
					log.Printf("Seller with email or slug already exists: %s\n", writeError.Message)
					return nil, errors.New("email or store name already registered")
				}
			}
		}
		return nil, err
	}

	s.emailPool.Enqueue(email.EmailJob{Type: "welcome", Data: email.BlackcartEmailData{
		Email:     seller.Email,
		Name:      seller.FullName,
		StoreName: seller.StoreName,
	}})

	return &seller, nil
}

func (s *sellerService) Authenticate(ctx context.Context, req models.SellerLoginRequest) (*models.Seller, error) {
	sellerEmail := strings.ToLower(strings.TrimSpace(req.Email))

	var seller models.Seller
	err := s.sellerCollection.FindOne(ctx, bson.M{"email": sellerEmail}).Decode(&seller)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("invalid credentials")
		}
		return nil, err
	}

	if err := validators.CheckPassword(seller.Password, req.Password); err != nil {
		return nil, errors.New("invalid credentials")
	}

	return &seller, nil
}

func (s *sellerService) GetSellerByID(ctx context.Context, id primitive.ObjectID) (*models.Seller, error) {
	var seller models.Seller
	err := s.sellerCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&seller)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &seller, nil
}

func (s *sellerService) GetSellerBySlug(ctx context.Context, storeSlug string) (*models.Seller, error) {
	var seller models.Seller
	err := s.sellerCollection.FindOne(ctx, bson.M{"store_slug": storeSlug}).Decode(&seller)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &seller, nil
}

// EnsureStoreSlug backfills a slug on legacy accounts that predate slug
// generation. Mirrors the one-off migration, but lazily on profile reads.
func (s *sellerService) EnsureStoreSlug(ctx context.Context, seller *models.Seller) error {
	if seller.StoreSlug != "" || seller.StoreName == "" {
		return nil
	}

	storeSlug, err := s.uniqueStoreSlug(ctx, seller.StoreName, seller.ID)
	if err != nil {
		return err
	}

	_, err = s.sellerCollection.UpdateOne(ctx,
		bson.M{"_id": seller.ID},
		bson.M{"$set": bson.M{"store_slug": storeSlug, "updated_at": time.Now()}})
	if err != nil {
		return err
	}

	seller.StoreSlug = storeSlug
	return nil
}

func (s *sellerService) UpdateSeller(ctx context.Context, id primitive.ObjectID, req models.UpdateSellerRequest) (*models.Seller, error) {
	update := bson.M{"updated_at": time.Now()}

	if !common.IsEmptyString(req.Phone) {
		update["phone"] = req.Phone
	}
	if req.BusinessType != "" {
		update["business_type"] = req.BusinessType
	}
	if req.Address != nil {
		update["address"] = req.Address
	}
	if !common.IsEmptyString(req.StoreName) {
		// A renamed store gets a freshly disambiguated slug.
		storeSlug, err := s.uniqueStoreSlug(ctx, req.StoreName, id)
		if err != nil {
			return nil, err
		}
		update["store_name"] = req.StoreName
		update["store_slug"] = storeSlug
	}

	var seller models.Seller
	err := s.sellerCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&seller)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &seller, nil
}

func (s *sellerService) VerifySeller(ctx context.Context, id primitive.ObjectID) (*models.Seller, error) {
	now := time.Now()

	var seller models.Seller
	err := s.sellerCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"is_verified":          true,
			"verified_at":          now,
			"id_document.verified": true,
			"updated_at":           now,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&seller)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &seller, nil
}

func (s *sellerService) ListVerifiedSellers(ctx context.Context, pagination util.PaginationArgs) ([]models.SellerPublic, int64, error) {
	filter := bson.M{"is_verified": true}
	findOptions := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Skip)).
		SetSort(util.GetCreatedSortBson(pagination.Sort))

	cursor, err := s.sellerCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var sellers []models.SellerPublic
	if err = cursor.All(ctx, &sellers); err != nil {
		return nil, 0, err
	}

	count, err := s.sellerCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return sellers, count, nil
}

func (s *sellerService) BeginPasswordReset(ctx context.Context, emailAddr string) error {
	sellerEmail := strings.ToLower(strings.TrimSpace(emailAddr))

	var seller models.Seller
	err := s.sellerCollection.FindOne(ctx, bson.M{"email": sellerEmail}).Decode(&seller)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// Deliberately silent: the endpoint answers 200 either way so
			// the reset flow can't be used to probe registered emails.
			return nil
		}
		return err
	}

	token := auth.GenerateSecureToken(20)
	expires := time.Now().Add(common.RESET_TOKEN_EXPIRATION_TIME)

	_, err = s.sellerCollection.UpdateOne(ctx,
		bson.M{"_id": seller.ID},
		bson.M{"$set": bson.M{
			"reset_token":         token,
			"reset_token_expires": expires,
			"updated_at":          time.Now(),
		}})
	if err != nil {
		return err
	}

	link := util.LoadEnvFor("FRONTEND_URL") + "/seller/reset-password?token=" + token
	s.emailPool.Enqueue(email.EmailJob{Type: "password_reset", Data: email.BlackcartEmailData{
		Email: seller.Email,
		Name:  seller.FullName,
		Link:  link,
	}})

	return nil
}

func (s *sellerService) CompletePasswordReset(ctx context.Context, token, newPassword string) error {
	if err := validators.ValidatePassword(newPassword); err != nil {
		return err
	}

	var seller models.Seller
	err := s.sellerCollection.FindOne(ctx, bson.M{
		"reset_token":         token,
		"reset_token_expires": bson.M{"$gt": time.Now()},
	}).Decode(&seller)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return errors.New("reset token is invalid or expired")
		}
		return err
	}

	hashedPassword, err := validators.HashPassword(newPassword)
	if err != nil {
		return err
	}

	_, err = s.sellerCollection.UpdateOne(ctx,
		bson.M{"_id": seller.ID},
		bson.M{
			"$set":   bson.M{"password": hashedPassword, "updated_at": time.Now()},
			"$unset": bson.M{"reset_token": "", "reset_token_expires": ""},
		})
	if err != nil {
		return err
	}

	s.emailPool.Enqueue(email.EmailJob{Type: "password_reset_success", Data: email.BlackcartEmailData{
		Email: seller.Email,
		Name:  seller.FullName,
	}})

	return nil
}
