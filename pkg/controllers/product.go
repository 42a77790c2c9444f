package controllers

import (
	"net/http"

	"blackcart-io/api/internal/common"
	"blackcart-io/api/internal/validators"
	"blackcart-io/api/pkg/models"
	"blackcart-io/api/pkg/services"
	"blackcart-io/api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductController serves the seller catalog and its public read side.
type ProductController struct {
	productService services.ProductService
}

func InitProductController(productService services.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// Create adds a product to the authenticated seller's catalog. Multipart
// form, optional "image" file.
// POST /api/products/create
func (pc *ProductController) Create(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	sellerID, ok := ValidateAndGetSellerID(c)
	if !ok {
		return
	}

	// All five catalog fields are mandatory; reject before any upload work.
	input, err := validators.ValidateProductInput(
		c.PostForm("name"),
		c.PostForm("description"),
		c.PostForm("price"),
		c.PostForm("quantity"),
		c.PostForm("category"),
	)
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	req := services.CreateProductRequest{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Category:    input.Category,
	}

	imageFile, header, err := c.Request.FormFile("image")
	if err == nil {
		if header.Size > common.MAX_PRODUCT_IMAGE_BYTES {
			util.HandleError(c, http.StatusBadRequest, errors.New("product image exceeds the 5MB limit"))
			return
		}
		req.Image = imageFile
	}

	product, err := pc.productService.CreateProduct(ctx, sellerID, req)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusCreated, "Product created", product)
}

// SellerProducts lists the authenticated seller's own catalog, active and
// inactive alike.
// GET /api/products/seller-products
func (pc *ProductController) SellerProducts(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	sellerID, ok := ValidateAndGetSellerID(c)
	if !ok {
		return
	}

	products, err := pc.productService.ListSellerProducts(ctx, sellerID)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Seller products", products)
}

// ListPublic is the marketplace-wide storefront: active products with
// their seller profile joined in.
// GET /api/products/all
func (pc *ProductController) ListPublic(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	pagination := GetPaginationArgs(c)

	products, count, err := pc.productService.ListPublicProducts(ctx, pagination)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccessMeta(c, http.StatusOK, "Products", products, util.Pagination{
		Limit: pagination.Limit,
		Skip:  pagination.Skip,
		Count: count,
	})
}

// ListBySeller is one seller's public storefront by id.
// GET /api/products/by-seller/:sellerId
func (pc *ProductController) ListBySeller(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	sellerID, err := primitive.ObjectIDFromHex(c.Param("sellerId"))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	products, err := pc.productService.ListPublicProductsBySeller(ctx, sellerID)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Seller storefront", products)
}

// ListByStore is one seller's public storefront by store slug.
// GET /api/products/by-store/:storeSlug
func (pc *ProductController) ListByStore(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	storeSlug := c.Param("storeSlug")

	products, err := pc.productService.ListPublicProductsByStoreSlug(ctx, storeSlug)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Store products", products)
}

// Get returns one product by id.
// GET /api/products/:id
func (pc *ProductController) Get(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	product, err := pc.productService.GetProduct(ctx, productID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Product", product)
}

// Update patches a product the authenticated seller owns.
// PUT /api/products/update/:id
func (pc *ProductController) Update(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	sellerID, ok := ValidateAndGetSellerID(c)
	if !ok {
		return
	}

	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	var patch models.UpdateProductRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}
	if err := common.Validate.Struct(&patch); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	product, err := pc.productService.UpdateProduct(ctx, sellerID, productID, patch)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Product updated", product)
}

// Delete removes a product the authenticated seller owns, along with its
// uploaded image.
// DELETE /api/products/delete/:id
func (pc *ProductController) Delete(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	sellerID, ok := ValidateAndGetSellerID(c)
	if !ok {
		return
	}

	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	if err := pc.productService.DeleteProduct(ctx, sellerID, productID); err != nil {
		HandleServiceError(c, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Product deleted", nil)
}
