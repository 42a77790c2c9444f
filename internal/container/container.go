package container

import (
	"blackcart-io/api/email"
	"blackcart-io/api/pkg/controllers"
	"blackcart-io/api/pkg/services"
)

// ServiceContainer wires the email worker pool, services and controllers
// together once at startup.
type ServiceContainer struct {
	EmailPool *email.EmailWorkerPool

	SellerService  services.SellerService
	ProductService services.ProductService
	OrderService   services.OrderService

	SellerAuthController *controllers.SellerAuthController
	SellerController     *controllers.SellerController
	ProductController    *controllers.ProductController
	OrderController      *controllers.OrderController
}

func NewServiceContainer() *ServiceContainer {
	emailPool := email.BlackcartEmailWorkerPoolInstance(4)

	sellerService := services.NewSellerService(emailPool)
	productService := services.NewProductService()
	orderService := services.NewOrderService(emailPool)

	sellerAuthController := controllers.InitSellerAuthController(sellerService)
	sellerController := controllers.InitSellerController(sellerService, orderService)
	productController := controllers.InitProductController(productService)
	orderController := controllers.InitOrderController(orderService)

	return &ServiceContainer{
		EmailPool: emailPool,

		SellerService:  sellerService,
		ProductService: productService,
		OrderService:   orderService,

		SellerAuthController: sellerAuthController,
		SellerController:     sellerController,
		ProductController:    productController,
		OrderController:      orderController,
	}
}
