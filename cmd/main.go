// Package main is the entry point for the cart-service application.
//
// @title           Cart Service API
// @version         1.0.0
// @description     Cart and order total engine for a storefront.
//
//	Manages cart lines with merge-by-product semantics, persists cart
//	snapshots, and computes shipping, tax, and grand totals at checkout.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/studentshop/cart-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Carts
// @tag.description Cart line operations
//
// @tag.name        Checkout
// @tag.description Checkout and order endpoints
//
// @tag.name        Catalog
// @tag.description Product catalog endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/studentshop/cart-service/config"
	"github.com/studentshop/cart-service/internal/app"
	"github.com/studentshop/cart-service/internal/middleware"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	err := server.Run()

	// Flush any buffered request logs before exiting
	middleware.StopAsyncLogger()

	if err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
