package main

import (
	"log"

	"blackcart-io/api/internal/routers"
)

func main() {
	router, serviceContainer := routers.InitRoute()

	serviceContainer.EmailPool.Start()
	defer serviceContainer.EmailPool.Stop()

	err := router.Run("0.0.0.0:8080")
	if err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
