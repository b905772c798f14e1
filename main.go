package main

import (
	"encoding/gob"
	"log"

	"github.com/curiokart/CurioKart/cart"
	"github.com/curiokart/CurioKart/checkout"
	"github.com/curiokart/CurioKart/config"
	"github.com/curiokart/CurioKart/controllers"
	"github.com/curiokart/CurioKart/payment"
	"github.com/curiokart/CurioKart/routes"
	"github.com/curiokart/CurioKart/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Register types for session serialization
	gob.Register(checkout.Draft{})

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database and Redis
	config.InitDB()
	config.InitRedis()

	// Seed the catalog on first run
	if err := controllers.CreateDefaultProducts(); err != nil {
		utils.LogError("Failed to create default products: %v", err)
		log.Fatal("Failed to create default products:", err)
	}

	// Wire controller collaborators
	store := cart.NewStore(cart.NewRedisStorage(config.Redis))
	gateway := payment.NewRazorpayClient(cfg.RazorpayKey, cfg.RazorpaySecret)
	controllers.Init(store, gateway)

	// Set up router, middleware included
	router := routes.SetupRouter()

	utils.LogInfo("Server starting on port %s", cfg.Port)
	// Start server
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
