package routers

import (
	"blackcart-io/api/internal/auth"
	"blackcart-io/api/internal/container"
	"blackcart-io/api/internal/middleware"
	"blackcart-io/api/pkg/controllers"

	"github.com/gin-gonic/gin"
)

// InitRoute builds the Gin engine with the full route table wired against
// the service container.
func InitRoute() (*gin.Engine, *container.ServiceContainer) {
	serviceContainer := container.NewServiceContainer()
	router := gin.Default()
	router.Use(middleware.CorsMiddleware())

	api := router.Group("/api", middleware.BlackcartRateLimiter())
	{
		api.GET("/health", controllers.Ping)

		sellerAuthRoutes(api, serviceContainer)
		sellerRoutes(api, serviceContainer)
		productRoutes(api, serviceContainer)
		orderRoutes(api, serviceContainer)
	}

	return router, serviceContainer
}

// sellerAuthRoutes configures account creation, sessions and password reset.
func sellerAuthRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	sellerAuth := api.Group("/seller-auth")

	sellerAuth.POST("/register", sc.SellerAuthController.Register)
	sellerAuth.POST("/login", sc.SellerAuthController.Login)
	sellerAuth.POST("/forgot-password", sc.SellerAuthController.ForgotPassword)
	sellerAuth.POST("/reset-password", sc.SellerAuthController.ResetPassword)
	sellerAuth.POST("/verify/:sellerId", sc.SellerAuthController.Verify)

	secured := sellerAuth.Group("").Use(auth.Auth())
	secured.GET("/profile", sc.SellerAuthController.Profile)
	secured.DELETE("/logout", sc.SellerAuthController.Logout)
}

// sellerRoutes configures the seller's own store surface and the public
// seller directory.
func sellerRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	seller := api.Group("/seller").Use(auth.Auth())
	seller.GET("/dashboard", sc.SellerController.Dashboard)
	seller.GET("/info", sc.SellerController.Info)
	seller.PUT("/update", sc.SellerController.Update)

	sellers := api.Group("/sellers")
	sellers.GET("/all", sc.SellerController.ListSellers)
	sellers.GET("/:sellerId", sc.SellerController.GetSeller)
}

// productRoutes configures the seller catalog and the public storefront.
func productRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	products := api.Group("/products")

	products.GET("/all", sc.ProductController.ListPublic)
	products.GET("/by-seller/:sellerId", sc.ProductController.ListBySeller)
	products.GET("/by-store/:storeSlug", sc.ProductController.ListByStore)
	products.GET("/:id", sc.ProductController.Get)

	secured := products.Group("").Use(auth.Auth())
	secured.POST("/create", sc.ProductController.Create)
	secured.GET("/seller-products", sc.ProductController.SellerProducts)
	secured.PUT("/update/:id", sc.ProductController.Update)
	secured.DELETE("/delete/:id", sc.ProductController.Delete)
}

// orderRoutes configures checkout and order management. Buyers are
// anonymous and the confirmation page reads the order back without a
// session, so the whole group is open.
func orderRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	orders := api.Group("/orders")

	orders.POST("/create", sc.OrderController.Create)
	orders.POST("/checkout", sc.OrderController.Checkout)
	orders.GET("/all", sc.OrderController.ListAll)
	orders.GET("/seller/:sellerId", sc.OrderController.ListSeller)
	orders.GET("/:orderId", sc.OrderController.Get)
	orders.PUT("/update/:orderId", sc.OrderController.UpdateStatus)
	orders.DELETE("/:orderId", sc.OrderController.Delete)
}
